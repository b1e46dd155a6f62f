package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestCurrentUserID(t *testing.T) {
	c, w := newTestContext(t)
	want := uuid.New()
	c.Set("user_id", want)

	got, ok := currentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUserIDMissing(t *testing.T) {
	c, w := newTestContext(t)

	_, ok := currentUserID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUserIDWrongType(t *testing.T) {
	c, w := newTestContext(t)
	c.Set("user_id", "not-a-uuid")

	_, ok := currentUserID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalIDQuery(t *testing.T) {
	// gin caches the parsed query string per context, so each request
	// needs a fresh context.
	c, _ := newTestContext(t)
	id := uuid.New()
	c.Request = httptest.NewRequest(http.MethodGet, "/?folderId="+id.String(), nil)

	got, err := optionalIDQuery(c, "folderId")
	assert.NoError(t, err)
	assert.Equal(t, id, *got)

	c, _ = newTestContext(t)
	c.Request = httptest.NewRequest(http.MethodGet, "/?folderId=null", nil)
	got, err = optionalIDQuery(c, "folderId")
	assert.NoError(t, err)
	assert.Nil(t, got)

	c, _ = newTestContext(t)
	c.Request = httptest.NewRequest(http.MethodGet, "/?folderId=garbage", nil)
	_, err = optionalIDQuery(c, "folderId")
	assert.Error(t, err)
}
