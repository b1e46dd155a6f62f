package router

import (
	"drive_service/internal/handlers"

	"github.com/gin-gonic/gin"
)

// FileRoutes defines routes for file management.
func FileRoutes(rg *gin.RouterGroup, h *handlers.FileHandler) {
	files := rg.Group("/files")
	{
		files.POST("/upload", h.UploadFile)
		files.GET("", h.ListFiles)
		files.GET("/:fileId", h.GetFile)
		files.GET("/:fileId/preview", h.PreviewFile)
		files.GET("/:fileId/download", h.DownloadFile)
		files.PUT("/:fileId", h.RenameFile)
		files.DELETE("/:fileId", h.DeleteFile)
	}
}
