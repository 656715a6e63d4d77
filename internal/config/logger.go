package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func Init(s *Settings) {
	Logger.SetOutput(os.Stdout)

	if s != nil && s.LogFormat == "text" {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level := logrus.InfoLevel
	if s != nil {
		if parsed, err := logrus.ParseLevel(s.LogLevel); err == nil {
			level = parsed
		} else {
			Logger.WithError(err).Warnf("Invalid LOG_LEVEL %q, using info", s.LogLevel)
		}
	}
	Logger.SetLevel(level)
}

func WithContext(ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return Logger
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return Logger.WithField("request_id", reqID)
	}
	return Logger
}
