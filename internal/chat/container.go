package chat

import (
	"context"

	"github.com/saulo-duarte/chat-educacional/internal/config"
)

type ChatContainer struct {
	Service Service
	Handler *Handler
}

func NewChatContainer(ctx context.Context, s *config.Settings, recorder Recorder) (*ChatContainer, error) {
	generator, err := newGenerator(ctx, s.Gemini)
	if err != nil {
		return nil, err
	}

	service := NewService(generator, recorder, ServiceConfig{
		Generation: GenerationConfig{
			Temperature:      s.Gemini.Temperature,
			TopP:             s.Gemini.TopP,
			MaxOutputTokens:  s.Gemini.MaxOutputTokens,
			ResponseMIMEType: "text/plain",
		},
		Timeout:        s.Gemini.Timeout,
		ConversationID: NewConversationIDFunc(s.Conversation.Prefix, s.Conversation.Precision),
	})
	handler := NewHandler(service)

	return &ChatContainer{
		Service: service,
		Handler: handler,
	}, nil
}

func newGenerator(ctx context.Context, g config.GeminiSettings) (Generator, error) {
	if g.Transport == config.TransportREST {
		return NewRESTGenerator(g.BaseURL, g.APIKey, g.Model)
	}
	return NewGeminiGenerator(ctx, g.APIKey, g.Model, nil)
}
