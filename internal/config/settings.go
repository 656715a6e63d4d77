package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not configured")

const (
	TransportSDK  = "sdk"
	TransportREST = "rest"

	PrecisionSeconds = "seconds"
	PrecisionNanos   = "nanos"
	PrecisionUUID    = "uuid"
)

type Settings struct {
	Port string

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string

	Gemini       GeminiSettings
	Conversation ConversationSettings
}

type GeminiSettings struct {
	APIKey          string
	Model           string
	Transport       string
	BaseURL         string
	Timeout         time.Duration
	MaxOutputTokens int32
	Temperature     float32
	TopP            float32
}

type ConversationSettings struct {
	Prefix    string
	Precision string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("GEMINI_TRANSPORT", TransportSDK)
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("GEMINI_TIMEOUT", "30s")
	v.SetDefault("GEMINI_MAX_OUTPUT_TOKENS", 4096)
	v.SetDefault("GEMINI_TEMPERATURE", 0.7)
	v.SetDefault("GEMINI_TOP_P", 0.9)

	v.SetDefault("CONVERSATION_ID_PREFIX", "conv_")
	v.SetDefault("CONVERSATION_ID_PRECISION", PrecisionSeconds)
}

// LoadSettings reads the process configuration from the environment and,
// when path is not empty, from a config file. Environment values win.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	s := &Settings{
		Port:               v.GetString("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Gemini: GeminiSettings{
			APIKey:          strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
			Model:           v.GetString("GEMINI_MODEL"),
			Transport:       strings.ToLower(v.GetString("GEMINI_TRANSPORT")),
			BaseURL:         strings.TrimRight(v.GetString("GEMINI_BASE_URL"), "/"),
			Timeout:         v.GetDuration("GEMINI_TIMEOUT"),
			MaxOutputTokens: v.GetInt32("GEMINI_MAX_OUTPUT_TOKENS"),
			Temperature:     float32(v.GetFloat64("GEMINI_TEMPERATURE")),
			TopP:            float32(v.GetFloat64("GEMINI_TOP_P")),
		},
		Conversation: ConversationSettings{
			Prefix:    v.GetString("CONVERSATION_ID_PREFIX"),
			Precision: strings.ToLower(v.GetString("CONVERSATION_ID_PRECISION")),
		},
	}

	return s, nil
}

// Validate reports the first setting that prevents the service from starting.
func (s *Settings) Validate() error {
	if s.Gemini.APIKey == "" {
		return ErrMissingAPIKey
	}

	switch s.Gemini.Transport {
	case TransportSDK, TransportREST:
	default:
		return fmt.Errorf("unknown GEMINI_TRANSPORT: %q", s.Gemini.Transport)
	}

	switch s.Conversation.Precision {
	case PrecisionSeconds, PrecisionNanos, PrecisionUUID:
	default:
		return fmt.Errorf("unknown CONVERSATION_ID_PRECISION: %q", s.Conversation.Precision)
	}

	if s.Gemini.Timeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive, got %s", s.Gemini.Timeout)
	}
	if s.Gemini.MaxOutputTokens <= 0 {
		return fmt.Errorf("GEMINI_MAX_OUTPUT_TOKENS must be positive, got %d", s.Gemini.MaxOutputTokens)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
