package chat_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chat-educacional/internal/chat"
)

var testGenerationConfig = chat.GenerationConfig{
	Temperature:      0.7,
	TopP:             0.9,
	MaxOutputTokens:  4096,
	ResponseMIMEType: "text/plain",
}

func TestRESTGeneratorSendsRequest(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"finishReason":"STOP","content":{"parts":[{"text":"Docker is "},{"text":"a container platform."}]}}]}`))
	}))
	defer srv.Close()

	gen, err := chat.NewRESTGenerator(srv.URL, "secret", "gemini-2.0-flash")
	require.NoError(t, err)

	res, err := gen.Generate(context.Background(), "prompt text", testGenerationConfig)
	require.NoError(t, err)

	text, err := chat.Normalize(res)
	require.NoError(t, err)
	assert.Equal(t, "Docker is a container platform.", text)

	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)

	genCfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.7, genCfg["temperature"], 1e-6)
	assert.InDelta(t, 0.9, genCfg["topP"], 1e-6)
	assert.Equal(t, 4096.0, genCfg["maxOutputTokens"])
	assert.Equal(t, "text/plain", genCfg["responseMimeType"])
}

func TestRESTGeneratorAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	gen, err := chat.NewRESTGenerator(srv.URL, "secret", "gemini-2.0-flash")
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "p", testGenerationConfig)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chat.ErrTransport))
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")

	var te *chat.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusTooManyRequests, te.StatusCode)
	assert.Error(t, errors.Unwrap(te))
}

func TestRESTGeneratorRequiresKey(t *testing.T) {
	_, err := chat.NewRESTGenerator("http://localhost", "", "m")
	assert.Error(t, err)
}

func TestParseGenerateResponse(t *testing.T) {
	t.Run("DirectText", func(t *testing.T) {
		res, err := chat.ParseGenerateResponse([]byte(`{"text":"plain"}`))
		require.NoError(t, err)
		require.NotNil(t, res.Text)
		assert.Equal(t, "plain", *res.Text)
	})

	t.Run("EmptyCandidates", func(t *testing.T) {
		res, err := chat.ParseGenerateResponse([]byte(`{"candidates":[]}`))
		require.NoError(t, err)
		_, err = chat.Normalize(res)
		assert.True(t, errors.Is(err, chat.ErrNoCandidates))
	})

	t.Run("AbsentCandidates", func(t *testing.T) {
		res, err := chat.ParseGenerateResponse([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
		require.NoError(t, err)
		_, err = chat.Normalize(res)
		assert.True(t, errors.Is(err, chat.ErrNoCandidates))
	})

	t.Run("CandidateWithoutText", func(t *testing.T) {
		res, err := chat.ParseGenerateResponse([]byte(`{"candidates":[{"finishReason":"MAX_TOKENS","content":{"parts":[{"inlineData":{}},{"text":""}]}}]}`))
		require.NoError(t, err)

		_, err = chat.Normalize(res)
		var empty *chat.EmptyGenerationError
		require.True(t, errors.As(err, &empty))
		assert.Equal(t, "MAX_TOKENS", empty.FinishReason)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := chat.ParseGenerateResponse([]byte(`not json`))
		assert.True(t, errors.Is(err, chat.ErrTransport))
	})
}
