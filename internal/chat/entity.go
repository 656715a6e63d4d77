package chat

import (
	util "github.com/saulo-duarte/chat-educacional/internal/utils"
)

type QuestionRequest struct {
	Question       string `json:"question" validate:"required,min=1,max=1000" example:"What is Docker and what is it for?"`
	Topic          string `json:"topic,omitempty" example:"Docker e Containerização"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type AnswerResponse struct {
	Answer         string         `json:"answer"`
	Topic          *string        `json:"topic"`
	Timestamp      util.Timestamp `json:"timestamp" swaggertype:"string" format:"date-time"`
	ConversationID string         `json:"conversation_id"`
}

// GenerationResult is the raw outcome of a generation call before
// normalization. Providers fill either Text or Candidates.
type GenerationResult struct {
	Text       *string
	Candidates []Candidate
}

type Candidate struct {
	FinishReason string
	Content      *CandidateContent
}

type CandidateContent struct {
	Parts []*ContentPart
}

type ContentPart struct {
	Text *string
}

// GenerationConfig holds the fixed sampling parameters of every call.
type GenerationConfig struct {
	Temperature      float32
	TopP             float32
	MaxOutputTokens  int32
	ResponseMIMEType string
}
