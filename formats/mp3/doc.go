// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III streams with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the stream's sample rate.
// Its 16-bit output is normalized with the symmetric 32767 divisor, so
// writing the result as a 16-bit WAVE file reproduces the decoder's PCM
// codes exactly.
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err // wraps mp3.ErrNotMP3
//	}
//	samples, err := audio.ReadAll(src, 0)
package mp3
