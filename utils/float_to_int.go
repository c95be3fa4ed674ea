// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16Round converts a sample in [-1, 1] to signed 16-bit PCM,
// rounding to the nearest level rather than truncating toward zero.
// Truncation biases every sample toward silence by up to one level; rounding
// keeps the quantization error centered.
func Float64ToInt16Round(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(math.Round(x * 32767.0))
}
