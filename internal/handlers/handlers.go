package handlers

import (
	"errors"
	"log"
	"net/http"

	"drive_service/internal/services"
	"drive_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID pulls the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		log.Println("Missing user_id in request context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		log.Printf("Unexpected user_id type in request context: %T", value)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return userID, true
}

// optionalIDQuery parses an optional uuid query parameter; an absent or empty
// value means "root-level".
func optionalIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// serviceError maps a service error onto an HTTP status.
func serviceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		responses.Error(c, http.StatusNotFound, err, message)
	case errors.Is(err, services.ErrInvalid):
		responses.Error(c, http.StatusBadRequest, err, message)
	default:
		log.Printf("%s: %v", message, err)
		responses.Error(c, http.StatusInternalServerError, nil, message)
	}
}
