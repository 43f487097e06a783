// Package crosscheck defines the core types shared across the crosscheck CLI:
// the LLM provider contract, the Response record produced by every provider
// call, the ResponseSink interface used to fan responses out to console, file,
// and database sinks, and the LastAnswers store that holds the most recent
// answer per provider for comparison.
package crosscheck

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LLM is the contract every provider implements: send one prompt, get one
// text answer back. Multi-turn state and streaming are out of scope.
type LLM interface {
	// Name returns the provider name, e.g. "openai" or "groq".
	Name() string

	// Generate sends the prompt and returns the model's text answer.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Response records one answer from one provider. Immutable once created.
type Response struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model,omitempty"`
	Prompt    string    `json:"prompt"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewResponse creates a Response with a fresh ID and UTC timestamp.
func NewResponse(provider, model, prompt, text string) *Response {
	return &Response{
		ID:        uuid.NewString(),
		Provider:  provider,
		Model:     model,
		Prompt:    prompt,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

// ResponseSink receives each new Response. Implementations must not retain
// the pointer past the call if they mutate anything; the Response itself is
// shared and must be treated as read-only.
type ResponseSink interface {
	OnNewResponse(r *Response) error
}

// LastAnswers holds the most recent Response per provider. At most one entry
// per provider; each new answer overwrites the previous one. Providers
// iterate in first-seen order so comparison output is reproducible.
//
// Writes are serialized with a mutex so a future parallel ask fan-out stays
// correct without changes here.
type LastAnswers struct {
	mu         sync.Mutex
	order      []string
	byProvider map[string]*Response
}

func NewLastAnswers() *LastAnswers {
	return &LastAnswers{byProvider: map[string]*Response{}}
}

// Set stores the response as the provider's latest answer.
func (l *LastAnswers) Set(r *Response) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, seen := l.byProvider[r.Provider]; !seen {
		l.order = append(l.order, r.Provider)
	}
	l.byProvider[r.Provider] = r
}

// Get returns the provider's latest answer, or nil if it has none.
func (l *LastAnswers) Get(provider string) *Response {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.byProvider[provider]
}

// Providers returns the providers with a recorded answer, in first-seen order.
func (l *LastAnswers) Providers() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Len returns the number of providers with a recorded answer.
func (l *LastAnswers) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}
