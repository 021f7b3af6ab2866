// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio for tests.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate
	pos        int // frames generated so far
	waveform   func(frame, channel int) float32

	// Err, when set, is returned by ReadSamples once FailAt frames were produced.
	Err    error
	FailAt int

	// Closed records whether Close was called.
	Closed bool
}

// NewMockSource creates a source of frames frames whose values come from waveform.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSineSource generates a sine wave of the given frequency on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource generates frame/frames on channel 0, its negation on channel
// 1, and so on alternating, which makes channel order visible.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		v := float32(frame) / float32(frames)
		if channel%2 == 1 {
			return -v
		}
		return v
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.pos = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.Err != nil && m.pos >= m.FailAt {
		return 0, m.Err
	}
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	limit := m.frames
	if m.Err != nil {
		limit = min(limit, m.FailAt)
	}
	count := min(len(dst)/m.channels, limit-m.pos)

	for f := range count {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.pos+f, c)
		}
	}
	m.pos += count

	if m.pos >= m.frames {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}
