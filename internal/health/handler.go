package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/chat-educacional/internal/config"
	util "github.com/saulo-duarte/chat-educacional/internal/utils"
)

const (
	ServiceName = "chat-educacional-gemini"
	Version     = "1.0.0"
)

type Response struct {
	Status           string         `json:"status"`
	Service          string         `json:"service"`
	Version          string         `json:"version"`
	Timestamp        util.Timestamp `json:"timestamp" swaggertype:"string" format:"date-time"`
	GeminiConfigured bool           `json:"gemini_configured"`
}

type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
	Version string `json:"version"`
}

type Handler struct {
	geminiConfigured bool
}

func NewHandler(geminiConfigured bool) *Handler {
	return &Handler{geminiConfigured: geminiConfigured}
}

// Health godoc
// @Summary      Service health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  Response
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, Response{
		Status:           "healthy",
		Service:          ServiceName,
		Version:          Version,
		Timestamp:        util.NewTimestamp(time.Now()),
		GeminiConfigured: h.geminiConfigured,
	})
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, RootResponse{
		Message: "Chat Educacional Gemini API",
		Docs:    "/api/docs/index.html",
		Health:  "/health",
		Version: Version,
	})
}

func Routes(r chi.Router, h *Handler) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}
