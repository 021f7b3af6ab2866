// SPDX-License-Identifier: EPL-2.0

// Package wavecodec reads and writes canonical 44-byte PCM WAVE files and
// converts other audio formats into them.
//
// The codec itself lives in formats/wav. This package adds the glue most
// callers want:
//
//	// whole-file helpers
//	samples, hdr, err := wavecodec.ReadFile("in.wav")
//	err = wavecodec.WriteFile("out.wav", hdr, samples)
//
//	// any registered input format to WAVE
//	src, err := wavecodec.DecodeFile(wavecodec.DefaultRegistry(), "in.mp3")
//	out := wav.NewFile()
//	out.Bind("out.wav")
//	err = wavecodec.Transcode(src, out, 16)
//
//	// resample to 8 kHz mono on the way
//	small, err := wavecodec.Reformat(src, 8000, true)
//	err = wavecodec.Transcode(small, out, 16)
//
// # Formats
//
// DefaultRegistry knows:
//   - WAVE (canonical PCM only) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Sample values
//
// All samples are interleaved float32. Integer PCM maps to floats by
// dividing by 2^(bits-1)-1, so full scale is exactly ±1.0 and the most
// negative code lands slightly below -1. Writing rounds half away from
// zero and saturates out-of-range values.
//
// # Errors
//
// Failures are classified with errors.Is against the sentinels in
// formats/wav (ErrTruncated, ErrBadSignature, ErrUnsupportedBitDepth,
// ErrUnsupportedEncoding, ErrOutOfRange, ErrIO) and ErrUnknownFormat here.
// Storage failures are *wav.IOError values, which match ErrIO and unwrap
// to the underlying error.
package wavecodec
