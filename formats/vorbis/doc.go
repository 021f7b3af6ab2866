// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Vorbis is a floating point codec, so samples are handed through as
// decoded. They may slightly exceed [-1, 1]; the wav encoder saturates them
// when they are written.
//
// ReadSamples always returns whole frames. A destination shorter than one
// frame reads nothing.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if errors.Is(err, vorbis.ErrNotVorbis) {
//	    // not Ogg Vorbis
//	}
package vorbis
