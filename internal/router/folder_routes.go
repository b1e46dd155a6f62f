package router

import (
	"drive_service/internal/handlers"

	"github.com/gin-gonic/gin"
)

// FolderRoutes defines routes for folder management.
func FolderRoutes(rg *gin.RouterGroup, h *handlers.FolderHandler) {
	folders := rg.Group("/folders")
	{
		folders.POST("", h.CreateFolder)
		folders.GET("", h.ListFolders)
		folders.GET("/:folderId", h.GetFolder)
		folders.PUT("/:folderId", h.RenameFolder)
		folders.DELETE("/:folderId", h.DeleteFolder)
	}
}
