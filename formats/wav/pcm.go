// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"

	"github.com/ik5/wavecodec/utils"
)

// decodeSamples converts whole little-endian signed samples from payload into
// dst and returns how many were written. A trailing partial sample is ignored.
func decodeSamples(dst []float32, payload []byte, bits int) int {
	bps := bits / 8
	if !SupportedBitDepth(bits) {
		return 0
	}

	n := min(len(dst), len(payload)/bps)
	le := binary.LittleEndian

	switch bits {
	case 8:
		for i := range n {
			dst[i] = utils.PCMToFloat32(int32(int8(payload[i])), 8)
		}
	case 16:
		for i := range n {
			v := int16(le.Uint16(payload[2*i:]))
			dst[i] = utils.PCMToFloat32(int32(v), 16)
		}
	case 32:
		for i := range n {
			v := int32(le.Uint32(payload[4*i:]))
			dst[i] = utils.PCMToFloat32(v, 32)
		}
	}

	return n
}

// appendSamples encodes samples at the given width and appends them to b.
// Widths other than 8, 16 and 32 append nothing.
func appendSamples(b []byte, samples []float32, bits int) []byte {
	le := binary.LittleEndian

	switch bits {
	case 8:
		for _, s := range samples {
			b = append(b, byte(int8(utils.Float32ToPCM(s, 8))))
		}
	case 16:
		for _, s := range samples {
			b = le.AppendUint16(b, uint16(int16(utils.Float32ToPCM(s, 16))))
		}
	case 32:
		for _, s := range samples {
			b = le.AppendUint32(b, uint32(utils.Float32ToPCM(s, 32)))
		}
	}

	return b
}
