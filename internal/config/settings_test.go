package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chat-educacional/internal/config"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	s, err := config.LoadSettings("")
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, "test-key", s.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", s.Gemini.Model)
	assert.Equal(t, config.TransportSDK, s.Gemini.Transport)
	assert.Equal(t, 30*time.Second, s.Gemini.Timeout)
	assert.Equal(t, int32(4096), s.Gemini.MaxOutputTokens)
	assert.InDelta(t, 0.7, s.Gemini.Temperature, 1e-6)
	assert.InDelta(t, 0.9, s.Gemini.TopP, 1e-6)
	assert.Equal(t, "conv_", s.Conversation.Prefix)
	assert.Equal(t, config.PrecisionSeconds, s.Conversation.Precision)
	assert.Equal(t, []string{"*"}, s.CORSAllowedOrigins)
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("GEMINI_TRANSPORT", "REST")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	s, err := config.LoadSettings("")
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "gemini-1.5-pro", s.Gemini.Model)
	assert.Equal(t, config.TransportREST, s.Gemini.Transport)
	assert.Equal(t, 5*time.Second, s.Gemini.Timeout)
	assert.Equal(t, "9000", s.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.CORSAllowedOrigins)
}

func TestLoadSettingsFromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "GEMINI_MODEL: gemini-file-model\nCONVERSATION_ID_PREFIX: chat-\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", s.Gemini.APIKey)
	assert.Equal(t, "gemini-file-model", s.Gemini.Model)
	assert.Equal(t, "chat-", s.Conversation.Prefix)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := config.LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Settings {
		return &config.Settings{
			Gemini: config.GeminiSettings{
				APIKey:          "key",
				Transport:       config.TransportSDK,
				Timeout:         time.Second,
				MaxOutputTokens: 1024,
			},
			Conversation: config.ConversationSettings{Precision: config.PrecisionNanos},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		s := valid()
		s.Gemini.APIKey = ""
		assert.True(t, errors.Is(s.Validate(), config.ErrMissingAPIKey))
	})

	t.Run("UnknownTransport", func(t *testing.T) {
		s := valid()
		s.Gemini.Transport = "grpc"
		assert.ErrorContains(t, s.Validate(), "GEMINI_TRANSPORT")
	})

	t.Run("UnknownPrecision", func(t *testing.T) {
		s := valid()
		s.Conversation.Precision = "millis"
		assert.ErrorContains(t, s.Validate(), "CONVERSATION_ID_PRECISION")
	})

	t.Run("NonPositiveTimeout", func(t *testing.T) {
		s := valid()
		s.Gemini.Timeout = 0
		assert.ErrorContains(t, s.Validate(), "GEMINI_TIMEOUT")
	})
}
