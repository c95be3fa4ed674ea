// SPDX-License-Identifier: EPL-2.0

package sstv

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/hamwav/sstv/formats/wav"
	"github.com/hamwav/sstv/modem"
)

// Modulate is a high-level convenience function that encodes a decoded image
// into an SSTV transmission as mono 16-bit PCM samples.
//
// The image is fitted onto the mode's raster (scaled preserving aspect
// ratio, centered on black), transformed into the mode's color planes and
// rendered as a tone stream: calibration header with the VIS code, the
// picture scan, and the end-of-transmission trailer.
//
// A sampleRate of 0 selects modem.DefaultSampleRate. For more control over
// the pipeline, and to reuse buffers across images, use modem.NewModulator
// directly.
func Modulate(img image.Image, mode modem.Mode, sampleRate int) ([]int16, error) {
	res, err := modem.Encode(
		modem.Config{Mode: mode, SampleRate: sampleRate},
		modem.FromImage(img),
	)
	if err != nil {
		return nil, err
	}
	return res.Samples, nil
}

// WriteTransmission modulates img and writes the result to ws as a mono
// 16-bit PCM WAV file.
func WriteTransmission(ws io.WriteSeeker, img image.Image, mode modem.Mode, sampleRate int) error {
	if sampleRate == 0 {
		sampleRate = modem.DefaultSampleRate
	}
	samples, err := Modulate(img, mode, sampleRate)
	if err != nil {
		return err
	}
	if err := wav.WriteWAV16(ws, sampleRate, samples); err != nil {
		return fmt.Errorf("sstv: %w", err)
	}
	return nil
}

// EstimateWAVSize returns the size in bytes of the WAV file WriteTransmission
// produces for the given mode and rate. The transmission duration is fixed
// per mode, so the size depends only on the configuration, not the image.
func EstimateWAVSize(mode modem.Mode, sampleRate int) int {
	if sampleRate == 0 {
		sampleRate = modem.DefaultSampleRate
	}
	seconds := modem.SpecFor(mode).TransmissionSeconds()
	return wav.FileSize(int(math.Round(float64(sampleRate) * seconds)))
}
