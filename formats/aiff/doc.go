// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio.Source streams so they can be
// written out as canonical WAVE files.
//
// Decoding is delegated to github.com/go-audio/aiff. Integer samples are
// scaled by the same symmetric full-scale divisor the wav package uses,
// 2^(bits-1)-1, so a full-scale AIFF sample decodes to exactly 1.0 and
// converts back to the same code when written at the same depth.
//
// Supported input:
//   - PCM at 8, 16, 24 or 32 bits per sample
//   - any channel count and sample rate
//
// Decode accepts any io.Reader. Non-seekable readers are buffered in memory
// because the underlying decoder seeks between chunks.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not AIFF
//	}
//
// AIFF-C compressed streams and writing are not supported.
package aiff
