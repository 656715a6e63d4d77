package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/chat-educacional/internal/config"
	"github.com/saulo-duarte/chat-educacional/internal/container"
)

func main() {
	settings, err := config.LoadSettings(os.Getenv("CONFIG_FILE"))
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load settings")
	}
	config.Init(settings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, settings)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to start service")
	}

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           c.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.WithField("port", settings.Port).Infof("Server listening on http://localhost:%s", settings.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Gemini.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
