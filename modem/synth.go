// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"fmt"
	"math"

	"github.com/hamwav/sstv/utils"
)

// amplitude scales the sine below full 16-bit range so the rounded peaks
// never clip.
const amplitude = 0.95

// synthesizer renders tone segments into mono 16-bit PCM at a fixed sample
// rate. Two invariants hold across every segment boundary:
//
//   - phase carries continuously: the oscillator is never reset when the
//     frequency changes, so transitions stay smooth and inject no broadband
//     noise into a decoder's tone detection;
//   - the fractional-sample debt stays in [0, 1): each segment's fractional
//     sample count is banked and paid out as one extra sample once it
//     reaches a whole one, bounding the cumulative duration error of the
//     entire transmission to under one sample.
//
// Both accumulators live only for one synthesis run.
type synthesizer struct {
	rate  float64
	phase float64 // radians, wrapped into [0, 2π)
	debt  float64 // fractional samples owed, in [0, 1)
	out   []int16
}

// newSynthesizer creates a synthesizer for sampleRate, pre-allocating the
// output for a stream of roughly expectSeconds.
func newSynthesizer(sampleRate int, expectSeconds float64) *synthesizer {
	return &synthesizer{
		rate: float64(sampleRate),
		out:  make([]int16, 0, int(float64(sampleRate)*expectSeconds)+1),
	}
}

func (s *synthesizer) segment(freqHz, durationMs float64) error {
	if durationMs < 0 || math.IsNaN(durationMs) {
		return fmt.Errorf("%w: segment duration %v ms", ErrEncodingFailure, durationMs)
	}
	if math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		// A non-finite frequency would poison the phase accumulator for
		// every following segment.
		return fmt.Errorf("%w: segment frequency %v Hz", ErrEncodingFailure, freqHz)
	}

	exact := s.rate * durationMs / 1000.0
	n := int(exact)
	s.debt += exact - float64(n)
	if s.debt >= 1 {
		n++
		s.debt--
	}

	if freqHz <= 0 {
		// Silence. The oscillator phase is left untouched.
		for i := 0; i < n; i++ {
			s.out = append(s.out, 0)
		}
		return nil
	}

	step := 2 * math.Pi * freqHz / s.rate
	for i := 0; i < n; i++ {
		s.out = append(s.out, utils.Float64ToInt16Round(amplitude*math.Sin(s.phase)))
		s.phase += step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}

	return nil
}
