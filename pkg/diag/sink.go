package diag

import (
	"sync"

	"github.com/rs/zerolog"
)

// Warning is a single non-fatal diagnostic emitted during resolution.
type Warning struct {
	// Message is the human-readable description.
	Message string

	// Path is the pattern or filesystem path the warning refers to.
	Path string
}

// Sink accepts non-fatal warnings for user-facing reporting. Resolution
// never blocks on, and never fails because of, a sink.
type Sink interface {
	Warn(w Warning)
}

// LogSink reports warnings through a zerolog logger.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink returns a Sink that writes each warning at warn level.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Warn implements Sink.
func (s *LogSink) Warn(w Warning) {
	s.log.Warn().Str("path", w.Path).Msg(w.Message)
}

// Collector accumulates warnings in memory. It is safe for concurrent
// use and is the sink of choice in tests and for end-of-run summaries.
type Collector struct {
	mu       sync.Mutex
	warnings []Warning
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Warn implements Sink.
func (c *Collector) Warn(w Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}

// Warnings returns a copy of the collected warnings in emission order.
func (c *Collector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Discard is a Sink that drops every warning.
type Discard struct{}

// Warn implements Sink.
func (Discard) Warn(Warning) {}
