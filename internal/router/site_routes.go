package router

import (
	"drive_service/internal/handlers"
	"drive_service/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every route group onto the engine.
func SetupRouter(
	r *gin.Engine,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	folderHandler *handlers.FolderHandler,
	fileHandler *handlers.FileHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	r.POST("/auth/login", authHandler.Login)
	r.POST("/users", userHandler.Register)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(db))
	{
		protected.GET("/auth/profile", authHandler.Profile)
		protected.GET("/users/:userId", userHandler.GetUser)
		protected.PUT("/users/:userId", userHandler.UpdateUser)

		FolderRoutes(protected, folderHandler)
		FileRoutes(protected, fileHandler)
	}
}
