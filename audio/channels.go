// SPDX-License-Identifier: EPL-2.0

package audio

// Deinterleave splits frame-ordered samples (f0c0, f0c1, ..., f1c0, ...)
// into one slice per channel.
func Deinterleave(samples []float32, channels int) ([][]float32, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrChannelMismatch
	}

	frames := len(samples) / channels
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			out[c][f] = samples[base+c]
		}
	}

	return out, nil
}

// Interleave is the inverse of Deinterleave. All channels must have the
// same length.
func Interleave(channels [][]float32) ([]float32, error) {
	if len(channels) == 0 {
		return nil, ErrInvalidChannels
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrUnevenChannels
		}
	}

	out := make([]float32, frames*len(channels))
	for c, ch := range channels {
		for f, v := range ch {
			out[f*len(channels)+c] = v
		}
	}

	return out, nil
}

// Peak returns the largest absolute sample value of each channel.
func Peak(samples []float32, channels int) ([]float32, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrChannelMismatch
	}

	peaks := make([]float32, channels)
	for i, v := range samples {
		if v < 0 {
			v = -v
		}
		if c := i % channels; v > peaks[c] {
			peaks[c] = v
		}
	}

	return peaks, nil
}
