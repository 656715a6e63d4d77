package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/chat-educacional/internal/config"
	util "github.com/saulo-duarte/chat-educacional/internal/utils"
)

const DefaultTopicLabel = "general"

// Recorder receives the counters touched while answering a question.
type Recorder interface {
	ObserveQuestion(topic string)
	IncGenerationError()
}

type Service interface {
	Ask(ctx context.Context, req QuestionRequest) (*AnswerResponse, error)
}

type ServiceConfig struct {
	Generation     GenerationConfig
	Timeout        time.Duration
	ConversationID ConversationIDFunc
	Now            func() time.Time
}

type service struct {
	generator Generator
	recorder  Recorder
	cfg       ServiceConfig
}

func NewService(generator Generator, recorder Recorder, cfg ServiceConfig) Service {
	if cfg.ConversationID == nil {
		cfg.ConversationID = NewConversationIDFunc("conv_", config.PrecisionSeconds)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		generator: generator,
		recorder:  recorder,
		cfg:       cfg,
	}
}

func (s *service) Ask(ctx context.Context, req QuestionRequest) (*AnswerResponse, error) {
	log := config.WithContext(ctx)

	topicLabel := req.Topic
	if topicLabel == "" {
		topicLabel = DefaultTopicLabel
	}

	log.WithFields(logrus.Fields{
		"topic":           topicLabel,
		"question_length": len([]rune(req.Question)),
		"model":           s.generator.ModelID(),
	}).Info("New question received")

	s.recorder.ObserveQuestion(topicLabel)

	prompt := BuildPrompt(req.Question, req.Topic)

	genCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	result, err := s.generator.Generate(genCtx, prompt, s.cfg.Generation)
	if err != nil {
		return nil, s.fail(log, s.transportError(genCtx, err))
	}

	text, err := Normalize(result)
	if err != nil {
		return nil, s.fail(log, err)
	}

	now := s.cfg.Now()

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = s.cfg.ConversationID(now)
	}

	var topic *string
	if req.Topic != "" {
		t := req.Topic
		topic = &t
	}

	log.WithFields(logrus.Fields{
		"answer_length":   len([]rune(text)),
		"conversation_id": conversationID,
	}).Info("Answer generated")

	return &AnswerResponse{
		Answer:         text,
		Topic:          topic,
		Timestamp:      util.NewTimestamp(now),
		ConversationID: conversationID,
	}, nil
}

func (s *service) fail(log logrus.FieldLogger, err error) error {
	s.recorder.IncGenerationError()
	log.WithError(err).Error("Failed to answer question")
	return err
}

// transportError only blames the configured timeout when the caller's own
// context is still live.
func (s *service) transportError(parent, genCtx context.Context, err error) error {
	if s.cfg.Timeout > 0 && parent.Err() == nil && errors.Is(genCtx.Err(), context.DeadlineExceeded) {
		return &TransportError{
			Message: fmt.Sprintf("timed out after %s", s.cfg.Timeout),
			Err:     err,
		}
	}

	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Message: err.Error(), Err: err}
}
