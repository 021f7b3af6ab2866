// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/pkg/errors"

// Error kinds reported by the codec. Callers classify failures with
// errors.Is; the returned errors carry extra context around these values.
var (
	// ErrTruncated means fewer bytes were available than a full header, or
	// than the payload the header announces.
	ErrTruncated = errors.New("wav: truncated data")

	// ErrBadSignature means one of the RIFF, WAVE, "fmt " or data ids does
	// not match.
	ErrBadSignature = errors.New("wav: bad chunk signature")

	// ErrUnsupportedBitDepth means bits per sample is not 8, 16 or 32.
	ErrUnsupportedBitDepth = errors.New("wav: unsupported bit depth")

	// ErrUnsupportedEncoding means the audio format tag is not PCM.
	ErrUnsupportedEncoding = errors.New("wav: unsupported audio encoding")

	// ErrIO means the storage could not be reached for a read or a write.
	ErrIO = errors.New("wav: i/o failure")

	// ErrOutOfRange means a format value or a derived size does not fit its
	// header field.
	ErrOutOfRange = errors.New("wav: header field out of range")
)

// IOError records a storage failure. It matches ErrIO under errors.Is and
// unwraps to the storage's own error.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return ErrIO.Error() + ": " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Is(target error) bool { return target == ErrIO }
func (e *IOError) Unwrap() error        { return e.Err }
