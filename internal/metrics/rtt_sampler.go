package metrics

import "time"

// Sampler collects RTT samples in exchange order and reduces the
// trailing window to a single estimate. Early exchanges are biased by
// connection warm-up, so only the last samples feed the estimate.
type Sampler struct {
	window  int
	samples []time.Duration
}

// NewSampler creates a sampler whose estimate averages the last
// window samples.
func NewSampler(window int) *Sampler {
	if window <= 0 {
		window = 1
	}
	return &Sampler{window: window}
}

// Add appends one sample. Insertion order is exchange order.
func (s *Sampler) Add(rtt time.Duration) {
	s.samples = append(s.samples, rtt)
}

// Count returns the number of collected samples.
func (s *Sampler) Count() int {
	return len(s.samples)
}

// Estimate returns the arithmetic mean of the last min(window, n)
// samples, or 0 when no samples were collected.
func (s *Sampler) Estimate() time.Duration {
	n := len(s.samples)
	if n == 0 {
		return 0
	}
	start := 0
	if n > s.window {
		start = n - s.window
	}
	var sum time.Duration
	for _, rtt := range s.samples[start:] {
		sum += rtt
	}
	return sum / time.Duration(n-start)
}
