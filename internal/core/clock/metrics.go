package clock

// AvgCount is the number of frames averaged for the frame time.
const AvgCount = 30

// Metrics keeps a rolling frame time average and a frames-per-second count.
type Metrics struct {
	times   [AvgCount]float64
	counter int
	filled  bool
	avgMS   float64

	frames        int
	accumulatedMS float64
	fps           float64
}

// NewMetrics returns empty metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records one frame that took frameSeconds.
func (m *Metrics) Update(frameSeconds float64) {
	frameMS := frameSeconds * 1000
	m.times[m.counter] = frameMS
	m.counter = (m.counter + 1) % AvgCount
	if m.counter == 0 {
		m.filled = true
	}

	n := m.counter
	if m.filled {
		n = AvgCount
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += m.times[i]
	}
	m.avgMS = sum / float64(n)

	m.frames++
	m.accumulatedMS += frameMS
	if m.accumulatedMS >= 1000 {
		m.fps = float64(m.frames)
		m.accumulatedMS -= 1000
		m.frames = 0
	}
}

// FPS returns the frame count of the last full second.
func (m *Metrics) FPS() float64 {
	return m.fps
}

// FrameTime returns the average frame time in milliseconds.
func (m *Metrics) FrameTime() float64 {
	return m.avgMS
}
