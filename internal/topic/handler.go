package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/chat-educacional/internal/config"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// List godoc
// @Summary      List available topics
// @Tags         Topics
// @Produce      json
// @Success      200  {array}  Topic
// @Router       /api/topics [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	config.WithContext(r.Context()).Debug("Listing available topics")
	config.JSON(w, http.StatusOK, h.catalog.List())
}

// Get godoc
// @Summary      Get one topic
// @Tags         Topics
// @Produce      json
// @Param        id   path      string  true  "Topic id"
// @Success      200  {object}  Topic
// @Failure      404  {object}  config.ErrorResponse
// @Router       /api/topics/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, ok := h.catalog.Find(id)
	if !ok {
		config.Error(w, http.StatusNotFound, "topic not found", id)
		return
	}
	config.JSON(w, http.StatusOK, t)
}

func Routes(r chi.Router, h *Handler) {
	r.Get("/topics", h.List)
	r.Get("/topics/{id}", h.Get)
}
