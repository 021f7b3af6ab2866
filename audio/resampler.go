// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavecodec/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation. It works on interleaved frames and keeps the channel
// count. When downsampling, frames pass through a one-pole low-pass filter
// before interpolation.
//
// A Resampler whose rate equals the source rate hands samples through
// unchanged.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames per output frame

	// window holds frames t-1, t, t+1, t+2; output is interpolated between
	// window[1] and window[2] at offset pos.
	window [4][]float32
	live   [4]bool // false for frames repeated past the end
	pos    float64
	primed bool

	in     []float32
	inOff  int
	inLen  int
	srcEOF bool

	alpha float32 // low-pass coefficient, 1 when off
	state []float32
	warm  bool
}

// NewResampler returns a Resampler producing rate Hz from src.
func NewResampler(src Source, rate int) (*Resampler, error) {
	if rate < 1 || src.SampleRate() < 1 {
		return nil, ErrInvalidRate
	}
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	step := float64(src.SampleRate()) / float64(rate)

	alpha := float32(1)
	if step > 1 {
		alpha = float32(1 / step)
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	bufSize -= bufSize % channels

	r := &Resampler{
		src:      src,
		rate:     rate,
		channels: channels,
		step:     step,
		in:       make([]float32, bufSize),
		alpha:    alpha,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *Resampler) passThrough() bool { return r.rate == r.src.SampleRate() }

// ReadSamples fills dst with whole frames at the target rate. len(dst) must
// be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.passThrough() {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.live[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		w := r.window
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(w[0][c], w[1][c], w[2][c], w[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

// prime loads the first frame into window[1] (and window[0] as its edge
// copy) and the next two frames after it.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.next(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	r.live[1] = true
	copy(r.window[0], r.window[1])
	r.live[0] = true

	for i := 2; i < 4; i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}

	return nil
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.live[0], r.live[1], r.live[2] = r.live[1], r.live[2], r.live[3]

	return r.fill(3)
}

// fill loads the next source frame into window[i], or repeats window[i-1]
// once the source is exhausted.
func (r *Resampler) fill(i int) error {
	ok, err := r.next(r.window[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[i], r.window[i-1])
	}
	r.live[i] = ok

	return nil
}

// next copies one filtered source frame into frame. It reports false once
// the source has no more whole frames.
func (r *Resampler) next(frame []float32) (bool, error) {
	for r.inOff >= r.inLen {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inOff, r.inLen = 0, n-n%r.channels

		switch {
		case err == io.EOF:
			r.srcEOF = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		case n == 0:
			// a source that returns nothing without EOF is treated as finished
			r.srcEOF = true
		}
	}

	copy(frame, r.in[r.inOff:r.inOff+r.channels])
	r.inOff += r.channels

	if r.alpha < 1 {
		if !r.warm {
			copy(r.state, frame)
			r.warm = true
		}
		for c := range frame {
			r.state[c] += r.alpha * (frame[c] - r.state[c])
			frame[c] = r.state[c]
		}
	}

	return true, nil
}
