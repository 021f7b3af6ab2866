// SPDX-License-Identifier: EPL-2.0

package wavecodec

import "github.com/pkg/errors"

// ErrUnknownFormat is returned when no decoder is registered for a file extension.
var ErrUnknownFormat = errors.New("wavecodec: no decoder for format")
