package chat

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/saulo-duarte/chat-educacional/internal/config"
)

// Generator sends a prompt to the model and returns the raw result.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (*GenerationResult, error)
	ModelID() string
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, httpOptions *genai.HTTPOptions) (Generator, error) {
	if apiKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if httpOptions != nil {
		cc.HTTPOptions = *httpOptions
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (*GenerationResult, error) {
	log := config.WithContext(ctx)

	gc := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(cfg.Temperature),
		TopP:             genai.Ptr(cfg.TopP),
		MaxOutputTokens:  cfg.MaxOutputTokens,
		ResponseMIMEType: cfg.ResponseMIMEType,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), gc)
	if err != nil {
		log.WithError(err).Error("Gemini GenerateContent failed")
		return nil, mapGeminiError(err)
	}

	if resp != nil && len(resp.Candidates) == 0 && resp.PromptFeedback != nil {
		log.WithField("block_reason", resp.PromptFeedback.BlockReason).Warn("Gemini returned no candidates")
	}

	return fromGenaiResponse(resp), nil
}

func (g *geminiGenerator) ModelID() string {
	return g.model
}

func fromGenaiResponse(resp *genai.GenerateContentResponse) *GenerationResult {
	res := &GenerationResult{}
	if resp == nil {
		return res
	}

	for _, c := range resp.Candidates {
		if c == nil {
			continue
		}
		cand := Candidate{FinishReason: string(c.FinishReason)}
		if c.Content != nil {
			content := &CandidateContent{}
			for _, p := range c.Content.Parts {
				if p == nil || p.Thought {
					content.Parts = append(content.Parts, nil)
					continue
				}
				text := p.Text
				content.Parts = append(content.Parts, &ContentPart{Text: &text})
			}
			cand.Content = content
		}
		res.Candidates = append(res.Candidates, cand)
	}
	return res
}

func mapGeminiError(err error) error {
	if apiErr, ok := asAPIError(err); ok {
		return &TransportError{
			Message:    fmt.Sprintf("gemini API error %d: %s", apiErr.Code, apiErr.Message),
			StatusCode: apiErr.Code,
			Err:        err,
		}
	}
	return &TransportError{Message: err.Error(), Err: err}
}

// The SDK returns APIError by value; the pointer form is accepted as well.
func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var ptr *genai.APIError
	if errors.As(err, &ptr) && ptr != nil {
		return *ptr, true
	}
	return genai.APIError{}, false
}
