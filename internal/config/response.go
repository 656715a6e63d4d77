package config

import (
	"encoding/json"
	"net/http"
	"time"

	util "github.com/saulo-duarte/chat-educacional/internal/utils"
)

type ErrorResponse struct {
	Error     string         `json:"error"`
	Detail    string         `json:"detail,omitempty"`
	Timestamp util.Timestamp `json:"timestamp"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger.WithError(err).Error("Failed to encode JSON response")
	}
}

func Error(w http.ResponseWriter, status int, message, detail string) {
	JSON(w, status, ErrorResponse{
		Error:     message,
		Detail:    detail,
		Timestamp: util.NewTimestamp(time.Now()),
	})
}
