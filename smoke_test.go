package main

import (
	"os"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoint hits a running server when SERVER_URL is set; it is
// skipped otherwise so the unit suite stays self-contained.
func TestHealthEndpoint(t *testing.T) {
	baseURL := os.Getenv("SERVER_URL")
	if baseURL == "" {
		t.Skip("SERVER_URL not set")
	}

	client := resty.New()
	client.SetBaseURL(baseURL)

	res, err := client.R().Get("/health")
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode())
}
