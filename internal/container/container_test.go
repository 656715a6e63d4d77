package container_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chat-educacional/internal/config"
	"github.com/saulo-duarte/chat-educacional/internal/container"
)

func settings(apiKey string) *config.Settings {
	return &config.Settings{
		Port:               "8080",
		CORSAllowedOrigins: []string{"*"},
		Gemini: config.GeminiSettings{
			APIKey:          apiKey,
			Model:           "gemini-2.0-flash",
			Transport:       config.TransportREST,
			BaseURL:         "http://127.0.0.1:0",
			Timeout:         time.Second,
			MaxOutputTokens: 4096,
			Temperature:     0.7,
			TopP:            0.9,
		},
		Conversation: config.ConversationSettings{Prefix: "conv_", Precision: config.PrecisionSeconds},
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := container.New(context.Background(), settings(""))
	assert.True(t, errors.Is(err, config.ErrMissingAPIKey))
}

func TestNewBuildsRouter(t *testing.T) {
	c, err := container.New(context.Background(), settings("key"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gemini_configured":true`)
}
