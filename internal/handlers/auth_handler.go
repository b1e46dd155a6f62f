package handlers

import (
	"errors"
	"net/http"

	"drive_service/internal/services"
	"drive_service/pkg/responses"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login exchanges email + password for a bearer token. With only an email it
// answers whether the account exists, without issuing a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	user, token, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			// An unknown email is reported in the body, not via status.
			c.JSON(http.StatusOK, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrInvalid):
			responses.Error(c, http.StatusUnauthorized, err, "Incorrect password")
		default:
			serviceError(c, err, "Login failed")
		}
		return
	}

	if req.Password == "" {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         user,
	})
}

// Profile returns the authenticated user.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(userID)
	if err != nil {
		serviceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}
