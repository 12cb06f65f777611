package clock

import (
	"math"
	"testing"
)

func TestClockAdvance(t *testing.T) {
	c := New()
	for i := 0; i < 4; i++ {
		c.Advance(0.25)
	}
	if c.Elapsed() != 1 {
		t.Errorf("Expected 1s elapsed, got %v", c.Elapsed())
	}
	if c.Frames() != 4 {
		t.Errorf("Expected 4 frames, got %d", c.Frames())
	}

	c.Reset()
	if c.Elapsed() != 0 || c.Frames() != 0 {
		t.Errorf("Expected reset clock, got %v after %d frames", c.Elapsed(), c.Frames())
	}
}

func TestMetricsFPS(t *testing.T) {
	m := NewMetrics()
	if m.FPS() != 0 {
		t.Errorf("Expected 0 FPS before a full second, got %v", m.FPS())
	}

	// 0.015625 is exact in binary, so 64 frames sum to exactly one second.
	for i := 0; i < 64; i++ {
		m.Update(0.015625)
	}
	if m.FPS() != 64 {
		t.Errorf("Expected 64 FPS, got %v", m.FPS())
	}
}

func TestMetricsFrameTimeAverage(t *testing.T) {
	m := NewMetrics()
	m.Update(0.010)
	m.Update(0.020)
	if math.Abs(m.FrameTime()-15) > 1e-9 {
		t.Errorf("Expected 15ms average over a partial window, got %v", m.FrameTime())
	}

	for i := 0; i < AvgCount; i++ {
		m.Update(0.020)
	}
	if math.Abs(m.FrameTime()-20) > 1e-9 {
		t.Errorf("Expected 20ms once the window rolls over, got %v", m.FrameTime())
	}
}
