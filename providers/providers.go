// Package providers contains the provider registry and the error type shared
// by all LLM provider implementations. Individual providers live in
// subpackages and register themselves during init().
package providers

import "fmt"

// ProviderError represents a non-2xx or transport-level failure from a
// provider API. It implements retry.APIError so transient status codes are
// retried and everything else fails fast.
type ProviderError struct {
	provider   string
	statusCode int
	body       string
}

func NewProviderError(provider string, statusCode int, body string) *ProviderError {
	return &ProviderError{provider: provider, statusCode: statusCode, body: body}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.provider, e.statusCode, e.body)
}

func (e *ProviderError) Provider() string { return e.provider }

func (e *ProviderError) StatusCode() int { return e.statusCode }
