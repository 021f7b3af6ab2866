// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// SliceSource serves samples that are already in memory.
type SliceSource struct {
	sampleRate int
	channels   int
	data       []float32
	off        int
}

// NewSliceSource wraps interleaved samples. The slice is not copied.
func NewSliceSource(sampleRate, channels int, samples []float32) *SliceSource {
	return &SliceSource{
		sampleRate: sampleRate,
		channels:   channels,
		data:       samples,
	}
}

func (s *SliceSource) SampleRate() int { return s.sampleRate }
func (s *SliceSource) Channels() int   { return s.channels }
func (s *SliceSource) BufSize() int    { return 4096 }
func (s *SliceSource) Close() error    { return nil }

// Len is the number of samples not read yet.
func (s *SliceSource) Len() int { return len(s.data) - s.off }

func (s *SliceSource) ReadSamples(dst []float32) (int, error) {
	if s.off >= len(s.data) {
		return 0, io.EOF
	}

	n := copy(dst, s.data[s.off:])
	s.off += n

	if s.off >= len(s.data) {
		return n, io.EOF
	}

	return n, nil
}

// ReadAll drains src into one interleaved slice, reading bufSize samples at
// a time (src.BufSize() when bufSize <= 0). It does not close src.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = 4096
	}
	if ch := src.Channels(); ch > 0 && bufSize%ch != 0 {
		bufSize += ch - bufSize%ch
	}

	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		// A source that returns nothing without EOF or error would spin forever.
		if n == 0 {
			break
		}
	}

	return out, nil
}
