// Package ai wraps the external LLM collaborator behind a narrow
// interface so services depend on one method and tests can script
// replies without network access.
package ai

import (
	"context"
	"errors"
)

var ErrEmptyCompletion = errors.New("completion returned no choices")

// Request is a single completion exchange. When ImagePNG is set the
// text and image are sent together as a vision request.
type Request struct {
	System   string
	Text     string
	ImagePNG []byte
}

// Client produces a free-text completion for a request.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
