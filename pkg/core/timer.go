package core

import "time"

// Stopwatch measures wall time across a single Start/Stop span.
type Stopwatch struct {
	start   time.Time
	started bool
}

// Start begins timing. Calling Start on a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	if s.started {
		return
	}
	s.start = time.Now()
	s.started = true
}

// Stop ends timing and returns the elapsed duration, or -1 if the stopwatch
// was never started.
func (s *Stopwatch) Stop() time.Duration {
	if !s.started {
		return -1
	}
	s.started = false
	return time.Since(s.start)
}

// Time runs fn and reports how long it took.
func Time(fn func()) time.Duration {
	var sw Stopwatch
	sw.Start()
	fn()
	return sw.Stop()
}
