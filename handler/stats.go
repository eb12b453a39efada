package handler

import (
	"sync/atomic"
)

// Stats tracks dispatch statistics. All counters are updated atomically and
// may be read while logging is in progress.
type Stats struct {
	processed      atomic.Uint64
	filtered       atomic.Uint64
	formatFailed   atomic.Uint64
	sinkFailed     atomic.Uint64
	callbackErrors atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed counts a line that was formatted and dispatched
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFiltered counts a message dropped by the level threshold
func (s *Stats) IncrementFiltered() {
	s.filtered.Add(1)
}

// IncrementFormatFailed counts a message dropped because it could not be formatted
func (s *Stats) IncrementFormatFailed() {
	s.formatFailed.Add(1)
}

// AddSinkFailed counts n destinations that could not be written
func (s *Stats) AddSinkFailed(n int) {
	if n > 0 {
		s.sinkFailed.Add(uint64(n))
	}
}

// IncrementCallbackErrors counts an error returned by a callback
func (s *Stats) IncrementCallbackErrors() {
	s.callbackErrors.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.processed.Store(0)
	s.filtered.Store(0)
	s.formatFailed.Store(0)
	s.sinkFailed.Store(0)
	s.callbackErrors.Store(0)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Processed      uint64
	Filtered       uint64
	FormatFailed   uint64
	SinkFailed     uint64
	CallbackErrors uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed:      s.processed.Load(),
		Filtered:       s.filtered.Load(),
		FormatFailed:   s.formatFailed.Load(),
		SinkFailed:     s.sinkFailed.Load(),
		CallbackErrors: s.callbackErrors.Load(),
	}
}
