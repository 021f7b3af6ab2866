// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidChannels = errors.New("channel count must be at least 1")
	ErrChannelMismatch = errors.New("sample count must be multiple of channels")
	ErrUnevenChannels  = errors.New("channels must have the same length")
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrInvalidDstSize  = errors.New("destination length must be a multiple of channels")
)
