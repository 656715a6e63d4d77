package container

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/chat-educacional/internal/chat"
	"github.com/saulo-duarte/chat-educacional/internal/config"
	"github.com/saulo-duarte/chat-educacional/internal/health"
	"github.com/saulo-duarte/chat-educacional/internal/metrics"
	"github.com/saulo-duarte/chat-educacional/internal/router"
	"github.com/saulo-duarte/chat-educacional/internal/topic"
)

type Container struct {
	Settings      *config.Settings
	Metrics       *metrics.Metrics
	ChatContainer *chat.ChatContainer
	TopicHandler  *topic.Handler
	HealthHandler *health.Handler
}

// New builds every dependency once. It fails when the settings cannot start
// the service, most notably without a Gemini API key.
func New(ctx context.Context, s *config.Settings) (*Container, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	m := metrics.New()

	chatContainer, err := chat.NewChatContainer(ctx, s, m)
	if err != nil {
		return nil, err
	}

	return &Container{
		Settings:      s,
		Metrics:       m,
		ChatContainer: chatContainer,
		TopicHandler:  topic.NewHandler(topic.DefaultCatalog()),
		HealthHandler: health.NewHandler(s.Gemini.APIKey != ""),
	}, nil
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		ChatHandler:        c.ChatContainer.Handler,
		TopicHandler:       c.TopicHandler,
		HealthHandler:      c.HealthHandler,
		Metrics:            c.Metrics,
		CORSAllowedOrigins: c.Settings.CORSAllowedOrigins,
	})
}
