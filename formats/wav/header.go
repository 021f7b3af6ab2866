// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"math"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/pkg/errors"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE/fmt/data header.
	HeaderSize = 44

	// FormatPCM is the audio format tag of uncompressed integer PCM.
	FormatPCM = 1

	// fmtChunkSize is the size of a PCM fmt chunk body.
	fmtChunkSize = 16
)

// Header is the fixed 44-byte header of a canonical PCM WAVE file.
// Fields are declared in wire order; see MarshalBinary for the offsets.
//
// ByteRate, BlockAlign, DataSize and ChunkSize are derived. Setting the other
// fields never updates them; Recompute does, and File.Write calls it right
// before encoding.
type Header struct {
	// RIFF chunk
	RiffID    [4]byte // "RIFF"
	ChunkSize uint32  // file size - 8
	WaveID    [4]byte // "WAVE"

	// fmt sub-chunk
	FmtID         [4]byte // "fmt "
	FmtSize       uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * BlockAlign
	BlockAlign    uint16 // NumChannels * BitsPerSample/8
	BitsPerSample uint16 // 8, 16 or 32

	// data sub-chunk
	DataID   [4]byte // "data"
	DataSize uint32  // samples * BitsPerSample/8
}

// DefaultHeader returns the header a new File starts with: all ids set, PCM
// with a 16-byte fmt chunk, and no rate, channel count or bit depth.
func DefaultHeader() Header {
	return Header{
		RiffID:      riff.RiffID,
		WaveID:      riff.WavFormatID,
		FmtID:       riff.FmtID,
		FmtSize:     fmtChunkSize,
		AudioFormat: FormatPCM,
		DataID:      riff.DataFormatID,
	}
}

// SupportedBitDepth reports whether bits is a sample width the codec can
// decode and encode.
func SupportedBitDepth(bits int) bool {
	return bits == 8 || bits == 16 || bits == 32
}

// Validate checks the four ids and the sample width, in that order, and
// returns the first violation. A non-PCM format tag is checked last.
func (h Header) Validate() error {
	ids := []struct {
		name      string
		got, want [4]byte
	}{
		{"RIFF", h.RiffID, riff.RiffID},
		{"WAVE", h.WaveID, riff.WavFormatID},
		{"fmt", h.FmtID, riff.FmtID},
		{"data", h.DataID, riff.DataFormatID},
	}

	for _, id := range ids {
		if id.got != id.want {
			return errors.Wrapf(ErrBadSignature, "%s id is %q", id.name, id.got[:])
		}
	}

	if !SupportedBitDepth(int(h.BitsPerSample)) {
		return errors.Wrapf(ErrUnsupportedBitDepth, "%d bits per sample", h.BitsPerSample)
	}

	if h.AudioFormat != FormatPCM {
		return errors.Wrapf(ErrUnsupportedEncoding, "format tag %d", h.AudioFormat)
	}

	return nil
}

// BytesPerSample is BitsPerSample/8.
func (h Header) BytesPerSample() int {
	return int(h.BitsPerSample) / 8
}

// SampleCount is the number of samples (all channels) the data chunk
// announces. It is 0 when the header has no usable sample width.
func (h Header) SampleCount() int {
	bps := h.BytesPerSample()
	if bps == 0 {
		return 0
	}

	return int(h.DataSize) / bps
}

// Frames is SampleCount divided by the channel count.
func (h Header) Frames() int {
	if h.NumChannels == 0 {
		return 0
	}

	return h.SampleCount() / int(h.NumChannels)
}

// Duration is the playing time announced by the data chunk.
func (h Header) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}

	return time.Duration(h.Frames()) * time.Second / time.Duration(h.SampleRate)
}

// MaxDataSize is the largest payload whose RIFF chunk size still fits in
// 32 bits.
const MaxDataSize = math.MaxUint32 - (HeaderSize - 8)

// Recompute sets every derived field for a payload of sampleCount samples.
// When a derived value does not fit its field it returns ErrOutOfRange and
// leaves h unchanged.
func (h *Header) Recompute(sampleCount int) error {
	bps := uint64(h.BytesPerSample())

	blockAlign := bps * uint64(h.NumChannels)
	if blockAlign > math.MaxUint16 {
		return errors.Wrapf(ErrOutOfRange, "block align %d", blockAlign)
	}

	byteRate := uint64(h.SampleRate) * blockAlign
	if byteRate > math.MaxUint32 {
		return errors.Wrapf(ErrOutOfRange, "byte rate %d", byteRate)
	}

	if sampleCount < 0 {
		return errors.Wrapf(ErrOutOfRange, "sample count %d", sampleCount)
	}
	dataSize := uint64(sampleCount) * bps
	if dataSize > MaxDataSize {
		return errors.Wrapf(ErrOutOfRange, "data size %d exceeds %d", dataSize, uint64(MaxDataSize))
	}

	h.BlockAlign = uint16(blockAlign)
	h.ByteRate = uint32(byteRate)
	h.DataSize = uint32(dataSize)
	h.ChunkSize = HeaderSize + h.DataSize - 8

	return nil
}

// PCMFormat describes the header as a go-audio format.
func (h Header) PCMFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(h.NumChannels),
		SampleRate:  int(h.SampleRate),
	}
}

// UnmarshalBinary decodes the first HeaderSize bytes of b, field by field in
// little-endian order. It does not validate the result.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return errors.Wrapf(ErrTruncated, "header needs %d bytes, got %d", HeaderSize, len(b))
	}

	le := binary.LittleEndian

	copy(h.RiffID[:], b[0:4])
	h.ChunkSize = le.Uint32(b[4:8])
	copy(h.WaveID[:], b[8:12])

	copy(h.FmtID[:], b[12:16])
	h.FmtSize = le.Uint32(b[16:20])
	h.AudioFormat = le.Uint16(b[20:22])
	h.NumChannels = le.Uint16(b[22:24])
	h.SampleRate = le.Uint32(b[24:28])
	h.ByteRate = le.Uint32(b[28:32])
	h.BlockAlign = le.Uint16(b[32:34])
	h.BitsPerSample = le.Uint16(b[34:36])

	copy(h.DataID[:], b[36:40])
	h.DataSize = le.Uint32(b[40:44])

	return nil
}

// MarshalBinary encodes the header into a new HeaderSize byte slice.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// AppendBinary appends the HeaderSize encoded bytes of the header to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	le := binary.LittleEndian

	// RIFF chunk (12 bytes)
	b = append(b, h.RiffID[:]...)
	b = le.AppendUint32(b, h.ChunkSize)
	b = append(b, h.WaveID[:]...)

	// fmt chunk (24 bytes)
	b = append(b, h.FmtID[:]...)
	b = le.AppendUint32(b, h.FmtSize)
	b = le.AppendUint16(b, h.AudioFormat)
	b = le.AppendUint16(b, h.NumChannels)
	b = le.AppendUint32(b, h.SampleRate)
	b = le.AppendUint32(b, h.ByteRate)
	b = le.AppendUint16(b, h.BlockAlign)
	b = le.AppendUint16(b, h.BitsPerSample)

	// data chunk header (8 bytes)
	b = append(b, h.DataID[:]...)
	b = le.AppendUint32(b, h.DataSize)

	return b, nil
}
