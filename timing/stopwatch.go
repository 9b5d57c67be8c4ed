// Package timing provides a Stopwatch for micro-benchmarking.
//
// A Stopwatch accumulates Start/Stop intervals and reports their mean and
// standard deviation in microseconds. It is used by benchmarking code around
// the autodiff graph, never inside it.
package timing

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stopwatch measures wall-clock intervals and accumulates them as samples.
// The zero value is ready to use. Not safe for concurrent use.
type Stopwatch struct {
	start   time.Time
	last    time.Duration
	samples []float64 // microseconds
}

// Start begins a new measurement.
func (s *Stopwatch) Start() {
	s.start = time.Now()
}

// Stop ends the current measurement and records it as a sample.
func (s *Stopwatch) Stop() {
	s.last = time.Since(s.start)
	s.samples = append(s.samples, float64(s.last.Microseconds()))
}

// Reset discards all recorded samples.
func (s *Stopwatch) Reset() {
	s.samples = s.samples[:0]
	s.last = 0
}

// Last returns the most recently measured interval.
func (s *Stopwatch) Last() time.Duration {
	return s.last
}

// N returns the number of recorded samples.
func (s *Stopwatch) N() int {
	return len(s.samples)
}

// Mean returns the average sample in microseconds, or 0 with no samples.
func (s *Stopwatch) Mean() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return stat.Mean(s.samples, nil)
}

// StdDev returns the sample standard deviation in microseconds, or 0 with
// fewer than two samples.
func (s *Stopwatch) StdDev() float64 {
	if len(s.samples) < 2 {
		return 0
	}
	return stat.StdDev(s.samples, nil)
}
