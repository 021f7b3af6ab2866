// SPDX-License-Identifier: EPL-2.0

package vorbis

import "github.com/pkg/errors"

var (
	// ErrNotVorbis wraps failures to read the Ogg Vorbis identification headers.
	ErrNotVorbis = errors.New("vorbis: not an Ogg Vorbis stream")

	// ErrNoChannels is returned when the stream announces zero channels.
	ErrNoChannels = errors.New("vorbis: stream has no channels")
)
