// SPDX-License-Identifier: EPL-2.0

package mp3

import "github.com/pkg/errors"

// ErrNotMP3 wraps every failure to find an MPEG audio frame at the start of the stream.
var ErrNotMP3 = errors.New("mp3: not an MPEG audio stream")
