package handlers

import (
	"fmt"
	"io"
	"net/http"

	"drive_service/internal/services"
	"drive_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FileHandler struct {
	service *services.FileService
}

func NewFileHandler(service *services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// UploadFile stores the multipart `file` field and its metadata row.
func (h *FileHandler) UploadFile(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid file")
		return
	}

	folderID, err := optionalIDQuery(c, "folderId")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid folder ID format")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, err, "Could not open file")
		return
	}
	defer src.Close()

	mimeType := fileHeader.Header.Get("Content-Type")

	file, err := h.service.Create(c.Request.Context(), src, fileHeader.Filename, mimeType, ownerID, folderID)
	if err != nil {
		serviceError(c, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, file)
}

// ListFiles returns the files in ?folderId=, or root-level files when the
// parameter is absent.
func (h *FileHandler) ListFiles(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	folderID, err := optionalIDQuery(c, "folderId")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid folder ID format")
		return
	}

	files, err := h.service.List(c.Request.Context(), ownerID, folderID)
	if err != nil {
		serviceError(c, err, "Failed to list files")
		return
	}

	c.JSON(http.StatusOK, files)
}

// GetFile returns a single file row.
func (h *FileHandler) GetFile(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid file ID format")
		return
	}

	file, err := h.service.Get(c.Request.Context(), fileID, ownerID)
	if err != nil {
		serviceError(c, err, "File not found")
		return
	}

	c.JSON(http.StatusOK, file)
}

// PreviewFile streams the blob inline.
func (h *FileHandler) PreviewFile(c *gin.Context) {
	h.streamFile(c, "inline")
}

// DownloadFile streams the blob as an attachment.
func (h *FileHandler) DownloadFile(c *gin.Context) {
	h.streamFile(c, "attachment")
}

func (h *FileHandler) streamFile(c *gin.Context, disposition string) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid file ID format")
		return
	}

	file, content, err := h.service.Open(c.Request.Context(), fileID, ownerID)
	if err != nil {
		serviceError(c, err, "File not found")
		return
	}
	defer content.Close()

	c.Header("Content-Type", file.MimeType)
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, file.Name))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, content); err != nil {
		// Headers are already out; nothing left to do but log.
		c.Error(err)
	}
}

// RenameFile updates a file's display name.
func (h *FileHandler) RenameFile(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid file ID format")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	file, err := h.service.Rename(c.Request.Context(), fileID, ownerID, req.Name)
	if err != nil {
		serviceError(c, err, "Failed to rename file")
		return
	}

	c.JSON(http.StatusOK, file)
}

// DeleteFile removes the blob (best-effort) and the row.
func (h *FileHandler) DeleteFile(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid file ID format")
		return
	}

	file, err := h.service.Delete(c.Request.Context(), fileID, ownerID)
	if err != nil {
		serviceError(c, err, "Failed to delete file")
		return
	}

	c.JSON(http.StatusOK, file)
}
