package handlers

import (
	"net/http"

	"coursebot/services/dialog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler receives inbound chat traffic relayed by the messaging gateway.
type ChatHandler struct {
	Engine *dialog.Engine
	Logger *zap.Logger
}

type inboundMessage struct {
	ChatID int64  `json:"chatId" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type inboundCallback struct {
	ChatID int64  `json:"chatId" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

// Message handles a plain text message from a chat user.
func (h *ChatHandler) Message(c *gin.Context) {
	var input inboundMessage
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Engine.HandleText(c.Request.Context(), input.ChatID, input.Text); err != nil {
		h.Logger.Error("Failed to handle chat message",
			zap.Int64("chatId", input.ChatID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Callback handles a button press relayed by the gateway.
func (h *ChatHandler) Callback(c *gin.Context) {
	var input inboundCallback
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Engine.HandleCallback(c.Request.Context(), input.ChatID, input.Token); err != nil {
		h.Logger.Error("Failed to handle chat callback",
			zap.Int64("chatId", input.ChatID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process callback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
