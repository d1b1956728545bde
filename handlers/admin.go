package handlers

import (
	"net/http"

	"coursebot/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the staff catalog management endpoints.
type AdminHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func (h *AdminHandler) ListCourses(c *gin.Context) {
	courses, err := h.Catalog.ListCourses()
	if err != nil {
		h.Logger.Error("Failed to list courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var input catalog.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	course, err := h.Catalog.CreateCourse(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course": course})
}

func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	id := c.Param("id")
	var input catalog.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	course, err := h.Catalog.UpdateCourse(id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (h *AdminHandler) SetCourseTags(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Tags []string `json:"tags" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.SetCourseTags(id, input.Tags); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "tags updated"})
}

func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	if err := h.Catalog.DeleteCourse(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "course deleted"})
}

func (h *AdminHandler) ListLocations(c *gin.Context) {
	locations, err := h.Catalog.ListLocations()
	if err != nil {
		h.Logger.Error("Failed to list locations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list locations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (h *AdminHandler) CreateLocation(c *gin.Context) {
	var input struct {
		District string `json:"district" binding:"required"`
		Address  string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	location, err := h.Catalog.CreateLocation(input.District, input.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"location": location})
}

func (h *AdminHandler) DeleteLocation(c *gin.Context) {
	if err := h.Catalog.DeleteLocation(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "location deleted"})
}

func (h *AdminHandler) ListTrials(c *gin.Context) {
	unconfirmedOnly := c.Query("unconfirmed") == "true"
	trials, err := h.Catalog.ListTrials(unconfirmedOnly)
	if err != nil {
		h.Logger.Error("Failed to list trial lessons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list trial lessons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trials": trials})
}

func (h *AdminHandler) ConfirmTrial(c *gin.Context) {
	if err := h.Catalog.ConfirmTrial(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "trial confirmed"})
}

func (h *AdminHandler) ClearTrials(c *gin.Context) {
	count, err := h.Catalog.ClearTrials()
	if err != nil {
		h.Logger.Error("Failed to clear trial lessons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear trial lessons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}

func (h *AdminHandler) AddAdmin(c *gin.Context) {
	var input struct {
		ChatID int64 `json:"chatId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.AddAdmin(input.ChatID); err != nil {
		h.Logger.Error("Failed to add admin", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add admin"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "admin added"})
}
