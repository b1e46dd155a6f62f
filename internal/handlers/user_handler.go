package handlers

import (
	"net/http"

	"drive_service/internal/services"
	"drive_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register creates a new account.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	user, err := h.users.Register(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		serviceError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser returns a user by id.
func (h *UserHandler) GetUser(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid user ID format")
		return
	}

	user, err := h.users.Get(userID)
	if err != nil {
		serviceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser changes the display name.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid user ID format")
		return
	}

	var req struct {
		Name string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	user, err := h.users.UpdateName(userID, req.Name)
	if err != nil {
		serviceError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}
