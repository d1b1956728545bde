package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	adminRepo "coursebot/database/repository/admin"
	"coursebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler issues and revokes admin session tokens.
type AuthHandler struct {
	Admins adminRepo.AdminRepository
	Logger *zap.Logger
}

type adminLoginInput struct {
	ChatID   int64  `json:"chatId" binding:"required"`
	AdminKey string `json:"adminKey" binding:"required"`
}

// Login authenticates an admin by the shared key plus registered chat id
// and returns a bearer token valid for the auth cache TTL.
func (h *AuthHandler) Login(c *gin.Context) {
	var input adminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if !utils.VerifyAdminKey(input.AdminKey) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin key"})
		return
	}

	isAdmin, err := h.Admins.IsAdmin(input.ChatID)
	if err != nil {
		h.Logger.Error("Failed to check admin registry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify admin"})
		return
	}
	if !isAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not a registered admin"})
		return
	}

	token, err := utils.GenerateAdminToken(input.ChatID, utils.AuthCacheTTL)
	if err != nil {
		h.Logger.Error("Failed to generate admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	cacheKey := utils.AuthCachePrefix + strconv.FormatInt(input.ChatID, 10)
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey,
		utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		h.Logger.Error("Failed to cache admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": fmt.Sprintf("%.0fs", utils.AuthCacheTTL.Seconds()),
	})
}

// Logout revokes the current admin session token.
func (h *AuthHandler) Logout(c *gin.Context) {
	chatID := c.GetInt64("adminChatID")
	cacheKey := utils.AuthCachePrefix + strconv.FormatInt(chatID, 10)
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		h.Logger.Error("Failed to revoke admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
