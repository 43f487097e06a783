// Package notify fans new responses out to an ordered set of sinks: console
// echo, JSONL archive, plain-text log, and optionally sqlite.
package notify

import (
	"fmt"
	"sync"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/slogger"
)

// Broadcaster delivers each response to all attached sinks synchronously, in
// attach order. A failing sink is logged and skipped so it never blocks the
// remaining sinks.
type Broadcaster struct {
	mu     sync.Mutex
	sinks  []crosscheck.ResponseSink
	logger slogger.Logger
}

func NewBroadcaster(logger slogger.Logger, sinks ...crosscheck.ResponseSink) *Broadcaster {
	if logger == nil {
		logger = slogger.DefaultLogger
	}
	return &Broadcaster{sinks: sinks, logger: logger}
}

// Attach appends a sink. Attaching the same sink twice is a no-op.
func (b *Broadcaster) Attach(sink crosscheck.ResponseSink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.sinks {
		if existing == sink {
			return
		}
	}
	b.sinks = append(b.sinks, sink)
}

// Detach removes a previously attached sink.
func (b *Broadcaster) Detach(sink crosscheck.ResponseSink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.sinks {
		if existing == sink {
			b.sinks = append(b.sinks[:i], b.sinks[i+1:]...)
			return
		}
	}
}

// Notify delivers the response to every sink in attach order.
func (b *Broadcaster) Notify(r *crosscheck.Response) {
	b.mu.Lock()
	sinks := make([]crosscheck.ResponseSink, len(b.sinks))
	copy(sinks, b.sinks)
	b.mu.Unlock()

	for _, sink := range sinks {
		if err := sink.OnNewResponse(r); err != nil {
			b.logger.Error("response sink failed",
				"sink", fmt.Sprintf("%T", sink),
				"provider", r.Provider,
				"error", err)
		}
	}
}
