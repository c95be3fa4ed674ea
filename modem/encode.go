// SPDX-License-Identifier: EPL-2.0

package modem

// Picture tone mapping: a 0..255 intensity lands linearly on 1500-2300 Hz.
const (
	pixelBaseHz = 1500.0
	hzPerLevel  = 3.1372549 // 800 Hz band over 255 levels
)

// VIS bit encoding.
const (
	visOneHz  = 1100.0
	visZeroHz = 1300.0
	visGateHz = 1200.0 // start and stop bits
	visBitMs  = 30.0
)

const silenceMs = 200.0

// segmentSink receives (frequency, duration) tone segments in strict
// transmission order. The encoder streams segments instead of materializing
// them; a PD-120 transmission alone is over six hundred thousand segments.
type segmentSink interface {
	segment(freqHz, durationMs float64) error
}

// encodeTransmission emits the complete tone-segment stream for one
// processed frame: header, picture scan, trailer.
func encodeTransmission(spec *Spec, f *Frame, sink segmentSink) error {
	if err := encodeHeader(spec, sink); err != nil {
		return err
	}
	if err := encodeScan(spec, f, sink); err != nil {
		return err
	}
	return encodeTrailer(sink)
}

// encodeHeader emits leading silence, the calibration tone sequence, the
// VIS leader and the mode's VIS code. The VIS structure is fixed by the
// protocol: 1900 Hz leader with a 10 ms break, a 30 ms 1200 Hz start bit,
// seven data bits least-significant first (1100 Hz = 1, 1300 Hz = 0), an
// even-parity bit and a 1200 Hz stop bit.
func encodeHeader(spec *Spec, sink segmentSink) error {
	if err := sink.segment(0, silenceMs); err != nil {
		return err
	}

	preamble := [...][2]float64{
		{1900, 100}, {1500, 100}, {1900, 100}, {1500, 100},
		{2300, 100}, {1500, 100}, {2300, 100}, {1500, 100},
		{1900, 300}, {visGateHz, 10}, {1900, 300}, {visGateHz, visBitMs},
	}
	for _, t := range preamble {
		if err := sink.segment(t[0], t[1]); err != nil {
			return err
		}
	}

	ones := 0
	for bit := 0; bit < 7; bit++ {
		freq := visZeroHz
		if spec.VIS>>bit&1 == 1 {
			freq = visOneHz
			ones++
		}
		if err := sink.segment(freq, visBitMs); err != nil {
			return err
		}
	}

	parity := visZeroHz
	if ones%2 == 1 {
		parity = visOneHz
	}
	if err := sink.segment(parity, visBitMs); err != nil {
		return err
	}

	return sink.segment(visGateHz, visBitMs)
}

// encodeScan walks the mode's line plans over the frame. Plans are cycled
// per pass (Robot 36 alternates chroma per line) and a pass consumes
// lineStride image lines (PD modes sweep line pairs).
func encodeScan(spec *Spec, f *Frame, sink segmentSink) error {
	for _, st := range spec.lead {
		if err := emitStep(spec, f, st, 0, sink); err != nil {
			return err
		}
	}

	pass := 0
	for line := 0; line < spec.Height; line += spec.lineStride {
		for _, st := range spec.plans[pass%len(spec.plans)] {
			if err := emitStep(spec, f, st, line, sink); err != nil {
				return err
			}
		}
		pass++
	}

	return nil
}

func emitStep(spec *Spec, f *Frame, st lineStep, line int, sink segmentSink) error {
	if st.kind == scanNone {
		return sink.segment(st.freq, st.ms)
	}

	for x := 0; x < spec.Width; x++ {
		var v float64
		switch st.kind {
		case scanLine:
			v = f.at(st.ch, x, line)
		case scanNextLine:
			v = f.at(st.ch, x, line+1)
		case scanPairAvg:
			v = (f.at(st.ch, x, line) + f.at(st.ch, x, line+1)) / 2
		}
		if err := sink.segment(pixelBaseHz+v*hzPerLevel, st.ms); err != nil {
			return err
		}
	}

	return nil
}

// encodeTrailer emits the end-of-transmission tones and trailing silence.
func encodeTrailer(sink segmentSink) error {
	trailer := [...][2]float64{
		{1500, 500}, {1900, 100}, {1500, 100}, {1900, 100}, {1500, 100},
	}
	for _, t := range trailer {
		if err := sink.segment(t[0], t[1]); err != nil {
			return err
		}
	}
	return sink.segment(0, silenceMs)
}

// durationSink sums segment durations; used to derive stream durations from
// the same code path that emits them.
type durationSink struct {
	ms float64
}

func (d *durationSink) segment(_, ms float64) error {
	d.ms += ms
	return nil
}

func headerMs(spec *Spec) float64 {
	var d durationSink
	_ = encodeHeader(spec, &d)
	return d.ms
}

func trailerMs() float64 {
	var d durationSink
	_ = encodeTrailer(&d)
	return d.ms
}
