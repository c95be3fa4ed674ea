// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"fmt"
	"math/bits"
)

// Mode selects one of the supported SSTV protocol variants.
type Mode uint8

const (
	Robot36 Mode = iota
	ScottieDX
	MartinM1
	PD120
)

// Modes returns every supported mode, in catalog order.
func Modes() []Mode {
	return []Mode{Robot36, ScottieDX, MartinM1, PD120}
}

func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeSpecs[m].Name
}

func (m Mode) valid() bool {
	return int(m) < len(modeSpecs)
}

// ColorEncoding describes what the three planes of a processed Frame hold.
type ColorEncoding uint8

const (
	// ColorRGB planes hold raw red, green and blue intensities.
	ColorRGB ColorEncoding = iota
	// ColorYUV planes hold luminance and the R-Y / B-Y color differences.
	ColorYUV
)

// Plane indices into a Frame, by encoding.
const (
	chanR = 0
	chanG = 1
	chanB = 2

	chanY  = 0
	chanRY = 1
	chanBY = 2
)

// scanKind tells how a line step sources its tone frequencies.
type scanKind uint8

const (
	scanNone     scanKind = iota // fixed tone (sync, porch, separator)
	scanLine                     // one tone per pixel of the current line
	scanNextLine                 // one tone per pixel of the following line
	scanPairAvg                  // per pixel, averaged with the following line
)

// lineStep is one element of a scan-line plan: either a fixed tone of freq
// Hz for ms milliseconds, or a per-pixel scan of plane ch at ms per pixel.
type lineStep struct {
	freq float64
	ms   float64
	kind scanKind
	ch   int
}

func tone(freq, ms float64) lineStep      { return lineStep{freq: freq, ms: ms} }
func pixels(ch int, ms float64) lineStep  { return lineStep{kind: scanLine, ch: ch, ms: ms} }
func pixNext(ch int, ms float64) lineStep { return lineStep{kind: scanNextLine, ch: ch, ms: ms} }
func pixAvg(ch int, ms float64) lineStep  { return lineStep{kind: scanPairAvg, ch: ch, ms: ms} }

// Spec holds the immutable protocol parameters of one mode. All values come
// from the published mode tables (Bruchanov, "Image Communication on Short
// Waves"; N7CXI, "Proposal for SSTV Mode Specifications"; KB4YZ line-timing
// tables) and are fixed constants, never derived at run time.
type Spec struct {
	Mode   Mode
	Name   string
	VIS    uint8 // 7-bit mode identifier sent in the header
	Width  int
	Height int

	// NominalSeconds is the published scan duration. For every mode but
	// Robot 36 the published figure is rounded; the exact stream duration
	// is derived from the line plans (see ScanSeconds).
	NominalSeconds float64

	Color ColorEncoding

	lineStride int          // image lines consumed per plan pass
	lead       []lineStep   // one-time steps before the first scan line
	plans      [][]lineStep // cycled per pass
}

// modeSpecs is indexed by Mode. Line plans transcribe the published line
// structure of each mode; durations are milliseconds.
var modeSpecs = [...]Spec{
	Robot36: {
		Mode: Robot36, Name: "Robot 36", VIS: 0x08,
		Width: 320, Height: 240, NominalSeconds: 36.0,
		Color:      ColorYUV,
		lineStride: 1,
		plans: [][]lineStep{
			// Even lines: luma, then the R-Y average of the line pair.
			{
				tone(1200, 9), tone(1500, 3),
				pixels(chanY, 0.275),
				tone(1500, 4.5), tone(1900, 1.5),
				pixAvg(chanRY, 0.1375),
			},
			// Odd lines: luma, then the B-Y average. The 2300 Hz
			// separator marks the odd half of the 4:2:0 chroma cycle.
			{
				tone(1200, 9), tone(1500, 3),
				pixels(chanY, 0.275),
				tone(2300, 4.5), tone(1900, 1.5),
				pixAvg(chanBY, 0.1375),
			},
		},
	},
	ScottieDX: {
		Mode: ScottieDX, Name: "Scottie DX", VIS: 0x4C,
		Width: 320, Height: 256, NominalSeconds: 269.6,
		Color:      ColorRGB,
		lineStride: 1,
		// Scottie puts the sync pulse mid-line, before the red scan; a
		// single starting sync precedes the first line only.
		lead: []lineStep{tone(1200, 9)},
		plans: [][]lineStep{
			{
				tone(1500, 1.5), pixels(chanG, 1.08),
				tone(1500, 1.5), pixels(chanB, 1.08),
				tone(1200, 9), tone(1500, 1.5), pixels(chanR, 1.08),
			},
		},
	},
	MartinM1: {
		Mode: MartinM1, Name: "Martin M1", VIS: 0x2C,
		Width: 320, Height: 256, NominalSeconds: 114.7,
		Color:      ColorRGB,
		lineStride: 1,
		plans: [][]lineStep{
			{
				tone(1200, 4.862), tone(1500, 0.572),
				pixels(chanG, 0.4576), tone(1500, 0.572),
				pixels(chanB, 0.4576), tone(1500, 0.572),
				pixels(chanR, 0.4576), tone(1500, 0.572),
			},
		},
	},
	PD120: {
		Mode: PD120, Name: "PD-120", VIS: 0x5F,
		Width: 640, Height: 496, NominalSeconds: 120.0,
		Color: ColorYUV,
		// PD modes transmit two image lines per sweep: Y of the even
		// line, shared R-Y and B-Y averages, then Y of the odd line.
		lineStride: 2,
		plans: [][]lineStep{
			{
				tone(1200, 20), tone(1500, 2.08),
				pixels(chanY, 0.19),
				pixAvg(chanRY, 0.19),
				pixAvg(chanBY, 0.19),
				pixNext(chanY, 0.19),
			},
		},
	},
}

// SpecFor returns a copy of the catalog entry for m. An unknown mode value
// is a programming error, not user input, and panics.
func SpecFor(m Mode) Spec {
	return *specFor(m)
}

func specFor(m Mode) *Spec {
	if !m.valid() {
		panic(fmt.Sprintf("modem: no catalog entry for mode %d", uint8(m)))
	}
	return &modeSpecs[m]
}

// VISParity returns the even-parity bit appended after the seven VIS data
// bits.
func (s Spec) VISParity() uint8 {
	return uint8(bits.OnesCount8(s.VIS&0x7f) & 1)
}

// ScanSeconds returns the duration of the picture portion of the
// transmission, derived from the line plans.
func (s Spec) ScanSeconds() float64 {
	return s.scanMs() / 1000.0
}

// TransmissionSeconds returns the derived duration of the complete stream:
// header, picture scan and trailer.
func (s Spec) TransmissionSeconds() float64 {
	return (headerMs(&s) + s.scanMs() + trailerMs()) / 1000.0
}

func (s *Spec) scanMs() float64 {
	total := stepsMs(s.lead, s.Width)
	passes := s.Height / s.lineStride
	for i := 0; i < passes; i++ {
		total += stepsMs(s.plans[i%len(s.plans)], s.Width)
	}
	return total
}

func stepsMs(steps []lineStep, width int) float64 {
	var ms float64
	for _, st := range steps {
		if st.kind == scanNone {
			ms += st.ms
		} else {
			ms += st.ms * float64(width)
		}
	}
	return ms
}
