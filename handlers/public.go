package handlers

import (
	"net/http"

	courseRepo "coursebot/database/repository/course"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const aboutText = "Мы — школа дополнительного образования для детей от 6 до 18 лет. " +
	"Помогаем подобрать курс по возрасту и интересам ребёнка и записаться на бесплатное пробное занятие."

// PublicHandler serves endpoints that need no authentication.
type PublicHandler struct {
	Courses courseRepo.CourseRepository
	Logger  *zap.Logger
}

// ListCourses returns the full public course catalogue.
func (h *PublicHandler) ListCourses(c *gin.Context) {
	courses, err := h.Courses.GetAll()
	if err != nil {
		h.Logger.Error("Failed to list courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// About returns a short school description.
func (h *PublicHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"about": aboutText})
}
