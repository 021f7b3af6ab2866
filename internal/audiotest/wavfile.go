// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
)

// WAV describes a canonical 44-byte header for building fixtures by hand,
// independently of the codec under test.
type WAV struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// Format is the audio format tag; 0 means PCM (1).
	Format int
}

// Build returns header + payload. Derived fields are computed from the
// struct and len(payload).
func (w WAV) Build(payload []byte) []byte {
	format := w.Format
	if format == 0 {
		format = 1
	}

	blockAlign := w.Channels * w.BitsPerSample / 8
	le := binary.LittleEndian

	b := make([]byte, 0, 44+len(payload))
	b = append(b, "RIFF"...)
	b = le.AppendUint32(b, uint32(36+len(payload)))
	b = append(b, "WAVE"...)

	b = append(b, "fmt "...)
	b = le.AppendUint32(b, 16)
	b = le.AppendUint16(b, uint16(format))
	b = le.AppendUint16(b, uint16(w.Channels))
	b = le.AppendUint32(b, uint32(w.SampleRate))
	b = le.AppendUint32(b, uint32(w.SampleRate*blockAlign))
	b = le.AppendUint16(b, uint16(blockAlign))
	b = le.AppendUint16(b, uint16(w.BitsPerSample))

	b = append(b, "data"...)
	b = le.AppendUint32(b, uint32(len(payload)))

	return append(b, payload...)
}

// PCM8 encodes signed 8-bit samples.
func PCM8(samples ...int8) []byte {
	b := make([]byte, 0, len(samples))
	for _, s := range samples {
		b = append(b, byte(s))
	}
	return b
}

// PCM16 encodes signed 16-bit little-endian samples.
func PCM16(samples ...int16) []byte {
	b := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint16(b, uint16(s))
	}
	return b
}

// PCM32 encodes signed 32-bit little-endian samples.
func PCM32(samples ...int32) []byte {
	b := make([]byte, 0, 4*len(samples))
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint32(b, uint32(s))
	}
	return b
}

// Patch returns a copy of b with s written at offset.
func Patch(b []byte, offset int, s string) []byte {
	out := append([]byte(nil), b...)
	copy(out[offset:], s)
	return out
}

// PatchUint16 returns a copy of b with v written little-endian at offset.
func PatchUint16(b []byte, offset int, v uint16) []byte {
	out := append([]byte(nil), b...)
	binary.LittleEndian.PutUint16(out[offset:], v)
	return out
}
