package handlers

import (
	"net/http"

	"drive_service/internal/services"
	"drive_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FolderHandler struct {
	service *services.FolderService
}

func NewFolderHandler(service *services.FolderService) *FolderHandler {
	return &FolderHandler{service: service}
}

// CreateFolder creates a new folder for the authenticated user.
func (h *FolderHandler) CreateFolder(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name     string     `json:"name" binding:"required"`
		ParentID *uuid.UUID `json:"parentId"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	folder, err := h.service.Create(c.Request.Context(), req.Name, ownerID, req.ParentID)
	if err != nil {
		serviceError(c, err, "Failed to create folder")
		return
	}

	c.JSON(http.StatusCreated, folder)
}

// ListFolders returns the folders under ?parentId=, or root-level folders
// when the parameter is absent.
func (h *FolderHandler) ListFolders(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	parentID, err := optionalIDQuery(c, "parentId")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid parent ID format")
		return
	}

	folders, err := h.service.ListChildren(c.Request.Context(), ownerID, parentID)
	if err != nil {
		serviceError(c, err, "Failed to list folders")
		return
	}

	c.JSON(http.StatusOK, folders)
}

// GetFolder returns one folder with its direct children and files.
func (h *FolderHandler) GetFolder(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid folder ID format")
		return
	}

	folder, err := h.service.Get(c.Request.Context(), folderID, ownerID)
	if err != nil {
		serviceError(c, err, "Folder not found")
		return
	}

	c.JSON(http.StatusOK, folder)
}

// RenameFolder updates a folder's name.
func (h *FolderHandler) RenameFolder(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid folder ID format")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	folder, err := h.service.Rename(c.Request.Context(), folderID, ownerID, req.Name)
	if err != nil {
		serviceError(c, err, "Failed to rename folder")
		return
	}

	c.JSON(http.StatusOK, folder)
}

// DeleteFolder removes a folder and everything below it.
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid folder ID format")
		return
	}

	folder, err := h.service.Delete(c.Request.Context(), folderID, ownerID)
	if err != nil {
		serviceError(c, err, "Failed to delete folder")
		return
	}

	c.JSON(http.StatusOK, folder)
}
