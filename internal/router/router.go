package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/chat-educacional/docs"
	"github.com/saulo-duarte/chat-educacional/internal/chat"
	"github.com/saulo-duarte/chat-educacional/internal/config"
	"github.com/saulo-duarte/chat-educacional/internal/health"
	"github.com/saulo-duarte/chat-educacional/internal/metrics"
	"github.com/saulo-duarte/chat-educacional/internal/middlewares"
	"github.com/saulo-duarte/chat-educacional/internal/topic"
)

type RouterConfig struct {
	ChatHandler        *chat.Handler
	TopicHandler       *topic.Handler
	HealthHandler      *health.Handler
	Metrics            *metrics.Metrics
	CORSAllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: config.Logger, NoColor: true}))
	r.Use(cfg.Metrics.Middleware)
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.Cors(cfg.CORSAllowedOrigins))

	r.NotFound(middlewares.NotFound)
	r.MethodNotAllowed(middlewares.MethodNotAllowed)

	health.Routes(r, cfg.HealthHandler)
	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.Health)
		r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/api/docs/doc.json")))

		chat.Routes(r, cfg.ChatHandler)
		topic.Routes(r, cfg.TopicHandler)
	})

	return r
}
