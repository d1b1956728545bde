package routes

import (
	"net/http"
	"time"

	"coursebot/handlers"
	"coursebot/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the inbound gateway webhook endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/message", hb.Chat.Message)
		api.POST("/callback", hb.Chat.Callback)
	}
}

// RegisterPublicRoutes registers unauthenticated catalogue endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/courses", hb.Public.ListCourses)
	r.GET("/api/about", hb.Public.About)
}

// RegisterAuthRoutes registers admin login and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/logout", middleware.JWTAuthAdminMiddleware(), hb.Auth.Logout)
	}
}

// RegisterAdminRoutes sets up endpoints for catalogue and trial management.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())

		adminGroup.GET("/courses", hb.Admin.ListCourses)
		adminGroup.POST("/courses", hb.Admin.CreateCourse)
		adminGroup.PUT("/courses/:id", hb.Admin.UpdateCourse)
		adminGroup.PUT("/courses/:id/tags", hb.Admin.SetCourseTags)
		adminGroup.DELETE("/courses/:id", hb.Admin.DeleteCourse)

		adminGroup.GET("/locations", hb.Admin.ListLocations)
		adminGroup.POST("/locations", hb.Admin.CreateLocation)
		adminGroup.DELETE("/locations/:id", hb.Admin.DeleteLocation)

		adminGroup.GET("/trials", hb.Admin.ListTrials)
		adminGroup.PUT("/trials/:id/confirm", hb.Admin.ConfirmTrial)
		adminGroup.DELETE("/trials", hb.Admin.ClearTrials)

		adminGroup.POST("/admins", hb.Admin.AddAdmin)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Coursebot"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
