// SPDX-License-Identifier: EPL-2.0

package modem

import "errors"

var (
	// ErrInvalidSampleRate is returned when the configured sample rate is
	// outside the supported [MinSampleRate, MaxSampleRate] range. Rates
	// below the low end would alias the 1500-2300 Hz picture band.
	ErrInvalidSampleRate = errors.New("sample rate outside supported range")

	// ErrUnsupportedImageInput is returned for a Raster whose channel
	// layout is not one of the recognized ones (1, 3 or 4 channels).
	ErrUnsupportedImageInput = errors.New("unsupported image channel layout")

	// ErrEmptyImage is returned when a source dimension is zero.
	ErrEmptyImage = errors.New("empty source image")

	// ErrEncodingFailure reports a broken internal invariant, such as a
	// negative computed tone duration.
	ErrEncodingFailure = errors.New("encoding invariant violated")
)
