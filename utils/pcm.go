// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale is the magnitude of the most negative integer sample at bitDepth.
// Unknown depths fall back to 16-bit.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1))
	default:
		return 32768.0
	}
}

// IntToFloat normalizes a signed integer PCM sample to [-1, 1).
func IntToFloat(v int, bitDepth int) float64 {
	return float64(v) / FullScale(bitDepth)
}

// Clamp limits x to [-1, 1].
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// FloatToInt clamps x and scales it to a signed integer sample at bitDepth.
// Positive full scale maps to max int, not 2^(n-1), to avoid overflow.
func FloatToInt(x float64, bitDepth int) int {
	return int(math.Round(Clamp(x) * (FullScale(bitDepth) - 1)))
}
