// SPDX-License-Identifier: EPL-2.0

package aiff

import "github.com/pkg/errors"

var (
	// ErrNotAiffFile means the stream does not start with a FORM/AIFF header.
	ErrNotAiffFile = errors.New("aiff: not an AIFF file")

	// ErrUnsupportedBitDepth is returned for sample sizes other than 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("aiff: unsupported bit depth")

	// ErrUnsupportedAiffLayout means the COMM chunk is missing or describes no channels.
	ErrUnsupportedAiffLayout = errors.New("aiff: unsupported layout")
)
