package chat

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/saulo-duarte/chat-educacional/internal/config"
)

type restGenerator struct {
	client *resty.Client
	model  string
}

type restPart struct {
	Text string `json:"text"`
}

type restContent struct {
	Parts []restPart `json:"parts"`
}

type restGenerationConfig struct {
	Temperature      float32 `json:"temperature"`
	TopP             float32 `json:"topP"`
	MaxOutputTokens  int32   `json:"maxOutputTokens"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type restRequest struct {
	Contents         []restContent        `json:"contents"`
	GenerationConfig restGenerationConfig `json:"generationConfig"`
}

// NewRESTGenerator talks to the generateContent REST endpoint directly.
func NewRESTGenerator(baseURL, apiKey, model string) (Generator, error) {
	if apiKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", apiKey)

	return &restGenerator{client: client, model: model}, nil
}

func (g *restGenerator) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (*GenerationResult, error) {
	log := config.WithContext(ctx)

	body := restRequest{
		Contents: []restContent{{Parts: []restPart{{Text: prompt}}}},
		GenerationConfig: restGenerationConfig{
			Temperature:      cfg.Temperature,
			TopP:             cfg.TopP,
			MaxOutputTokens:  cfg.MaxOutputTokens,
			ResponseMIMEType: cfg.ResponseMIMEType,
		},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/models/" + url.PathEscape(g.model) + ":generateContent")
	if err != nil {
		log.WithError(err).Error("Gemini REST call failed")
		return nil, &TransportError{Message: err.Error(), Err: err}
	}

	if resp.IsError() {
		msg := gjson.GetBytes(resp.Body(), "error.message").String()
		if msg == "" {
			msg = string(resp.Body())
		}
		log.WithField("status", resp.StatusCode()).Errorf("Gemini REST API error: %s", msg)
		return nil, &TransportError{
			Message:    fmt.Sprintf("gemini API error %d: %s", resp.StatusCode(), msg),
			StatusCode: resp.StatusCode(),
			Err:        errors.New(resp.Status()),
		}
	}

	return ParseGenerateResponse(resp.Body())
}

func (g *restGenerator) ModelID() string {
	return g.model
}

// ParseGenerateResponse reads a raw generateContent body. A top-level "text"
// field is kept as-is; otherwise candidates are copied without interpreting
// them.
func ParseGenerateResponse(body []byte) (*GenerationResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, &TransportError{Message: "invalid JSON in model response"}
	}

	root := gjson.ParseBytes(body)
	res := &GenerationResult{}

	if text := root.Get("text"); text.Exists() && text.Type != gjson.Null {
		s := text.String()
		res.Text = &s
		return res, nil
	}

	for _, c := range root.Get("candidates").Array() {
		cand := Candidate{FinishReason: c.Get("finishReason").String()}

		if content := c.Get("content"); content.Exists() && content.IsObject() {
			cc := &CandidateContent{}
			for _, p := range content.Get("parts").Array() {
				t := p.Get("text")
				if !t.Exists() || t.Type == gjson.Null {
					cc.Parts = append(cc.Parts, nil)
					continue
				}
				s := t.String()
				cc.Parts = append(cc.Parts, &ContentPart{Text: &s})
			}
			cand.Content = cc
		}

		res.Candidates = append(res.Candidates, cand)
	}

	return res, nil
}
