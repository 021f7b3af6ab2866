// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale returns the divisor used to normalize a signed integer sample of
// the given width: 2^(bits-1) - 1 (127, 32767, 8388607, 2147483647).
// Widths outside [2, 32] have no scale and return 0.
func FullScale(bits int) float64 {
	if bits < 2 || bits > 32 {
		return 0
	}

	return float64(int64(1)<<(bits-1) - 1)
}

// PCMToFloat32 normalizes a signed sample by FullScale(bits).
//
// The division is done in float32. The scale is symmetric while the integer
// range is not, so the most negative value of a width decodes slightly below
// -1.0 (e.g. -32768 / 32767 at 16 bits).
func PCMToFloat32(v int32, bits int) float32 {
	scale := FullScale(bits)
	if scale == 0 {
		return 0
	}

	return float32(v) / float32(scale)
}

// Float32ToPCM is the inverse of PCMToFloat32: x is multiplied by
// FullScale(bits), rounded half away from zero and saturated to the signed
// range of the width. NaN encodes as 0.
//
// For x in [-1, 1] this matches a plain narrowing conversion, so 1.0 becomes
// the positive maximum and -1.0 becomes its negation (not the minimum).
func Float32ToPCM(x float32, bits int) int32 {
	scale := FullScale(bits)
	if scale == 0 || math.IsNaN(float64(x)) {
		return 0
	}

	v := math.Round(float64(x) * scale)
	lowest := -scale - 1

	if v > scale {
		return int32(scale)
	}
	if v < lowest {
		return int32(lowest)
	}

	return int32(v)
}
