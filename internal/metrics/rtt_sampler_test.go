package metrics

import (
	"testing"
	"time"
)

func TestEstimateEmpty(t *testing.T) {
	s := NewSampler(4)
	if got := s.Estimate(); got != 0 {
		t.Fatalf("expected 0 for empty sampler, got %v", got)
	}
}

func TestEstimateUniformSamples(t *testing.T) {
	s := NewSampler(4)
	for i := 0; i < 8; i++ {
		s.Add(10 * time.Millisecond)
	}
	if got := s.Estimate(); got != 10*time.Millisecond {
		t.Fatalf("expected 10ms, got %v", got)
	}
}

func TestEstimateUsesTrailingWindow(t *testing.T) {
	s := NewSampler(4)
	for i := 1; i <= 8; i++ {
		s.Add(time.Duration(i) * time.Millisecond)
	}
	// Mean of the last 4 samples (5, 6, 7, 8 ms); the warm-up samples
	// must not contribute.
	want := 6500 * time.Microsecond
	if got := s.Estimate(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEstimateFewerSamplesThanWindow(t *testing.T) {
	s := NewSampler(4)
	s.Add(2 * time.Millisecond)
	s.Add(4 * time.Millisecond)
	if got := s.Estimate(); got != 3*time.Millisecond {
		t.Fatalf("expected 3ms, got %v", got)
	}
	if s.Count() != 2 {
		t.Fatalf("expected 2 samples, got %d", s.Count())
	}
}

func TestEstimateSingleSample(t *testing.T) {
	s := NewSampler(4)
	s.Add(7 * time.Millisecond)
	if got := s.Estimate(); got != 7*time.Millisecond {
		t.Fatalf("expected 7ms, got %v", got)
	}
}
