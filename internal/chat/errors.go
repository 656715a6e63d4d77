package chat

import (
	"errors"
	"fmt"
)

var (
	ErrNoCandidates    = errors.New("no response from model")
	ErrEmptyGeneration = errors.New("model returned an empty response")
	ErrTransport       = errors.New("generation request failed")
)

// EmptyGenerationError means a candidate came back without any text.
type EmptyGenerationError struct {
	FinishReason string
}

func (e *EmptyGenerationError) Error() string {
	if e.FinishReason == "" {
		return ErrEmptyGeneration.Error()
	}
	return fmt.Sprintf("%s (finish reason: %s)", ErrEmptyGeneration, e.FinishReason)
}

func (e *EmptyGenerationError) Is(target error) bool {
	return target == ErrEmptyGeneration
}

// TransportError wraps any failure of the call itself: network, API status,
// decoding or timeout. StatusCode is set only when the API answered with an
// error status.
type TransportError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Message == "" {
		return ErrTransport.Error()
	}
	return fmt.Sprintf("%s: %s", ErrTransport, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
