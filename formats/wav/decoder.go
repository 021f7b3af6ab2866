// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/wavecodec/audio"
	"github.com/pkg/errors"
)

// Decoder reads a canonical PCM WAVE stream for an audio pipeline.
// The whole payload is decoded up front, the same way File.Read does.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	head := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, head); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrap(ErrTruncated, "reading header")
		}
		return nil, errors.Wrap(err, "reading header")
	}

	var h Header
	if err := h.UnmarshalBinary(head); err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	want := h.SampleCount() * h.BytesPerSample()

	// ReadAll grows with the data actually present instead of trusting DataSize.
	payload, err := io.ReadAll(io.LimitReader(r, int64(want)))
	if err != nil {
		return nil, errors.Wrap(err, "reading payload")
	}
	if len(payload) < want {
		return nil, errors.Wrapf(ErrTruncated, "payload has %d of %d bytes", len(payload), want)
	}

	samples := make([]float32, h.SampleCount())
	decodeSamples(samples, payload, int(h.BitsPerSample))

	return audio.NewSliceSource(int(h.SampleRate), int(h.NumChannels), samples), nil
}
