package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned when a hosted provider has no API key.
	ErrMissingCredential = errors.New("llm: api key not set")

	// ErrEmptyResponse is returned when the provider answers with no content.
	ErrEmptyResponse = errors.New("llm: provider returned empty response")
)

// Request carries one system/user message pair. The credential is bound to
// the client when it is built, not passed per call.
type Request struct {
	System      string
	User        string
	Temperature float64
}

type LLMClient interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ProviderError wraps a failure raised by the provider call itself
// (network, auth, quota).
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func providerError(provider string, err error) error {
	return &ProviderError{Provider: provider, Err: err}
}
