package chat

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/chat-educacional/internal/config"
)

// ConversationIDFunc synthesizes an identifier for requests that did not
// carry one. Identifiers are opaque and never stored.
type ConversationIDFunc func(now time.Time) string

// NewConversationIDFunc returns the generator for precision. Second precision
// can repeat under concurrent requests in the same second.
func NewConversationIDFunc(prefix, precision string) ConversationIDFunc {
	switch precision {
	case config.PrecisionNanos:
		return func(now time.Time) string {
			return prefix + strconv.FormatInt(now.UnixNano(), 10)
		}
	case config.PrecisionUUID:
		return func(time.Time) string {
			return prefix + uuid.NewString()
		}
	default:
		return func(now time.Time) string {
			return prefix + strconv.FormatInt(now.Unix(), 10)
		}
	}
}
