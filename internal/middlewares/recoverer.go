package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/saulo-duarte/chat-educacional/internal/config"
)

// Recoverer turns a panic into a JSON 500. The body keeps the panic value as
// detail.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			config.WithContext(r.Context()).
				WithField("stack", string(debug.Stack())).
				Errorf("Unhandled error: %v", rec)

			config.Error(w, http.StatusInternalServerError, "internal server error", fmt.Sprint(rec))
		}()

		next.ServeHTTP(w, r)
	})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	config.Error(w, http.StatusNotFound, "not found", r.URL.Path)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	config.Error(w, http.StatusMethodNotAllowed, "method not allowed", r.Method+" "+r.URL.Path)
}
