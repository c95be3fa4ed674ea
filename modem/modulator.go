// SPDX-License-Identifier: EPL-2.0

package modem

import "fmt"

// Supported output sample rates. The default of 6000 Hz is the smallest
// rate that still clears the 2300 Hz top of the picture band with margin,
// and keeps transmission files small.
const (
	DefaultSampleRate = 6000
	MinSampleRate     = 6000
	MaxSampleRate     = 192000
)

// Config fixes the mode and output sample rate for one encode run. It is an
// immutable value: changing mode or rate means building a new Config (and,
// for cached results, a new Modulator), so a result can never mix state from
// two configurations. A zero SampleRate selects DefaultSampleRate.
type Config struct {
	Mode       Mode
	SampleRate int
}

func (c Config) withDefault() Config {
	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}
	return c
}

func (c Config) validate() error {
	// An out-of-range Mode panics in specFor: the mode set is closed, so
	// an unknown value is a caller bug, unlike a bad rate which is input.
	spec := specFor(c.Mode)
	if c.SampleRate < MinSampleRate || c.SampleRate > MaxSampleRate {
		return fmt.Errorf("%w: %d Hz for mode %s, supported range is %d-%d Hz",
			ErrInvalidSampleRate, c.SampleRate, spec.Name, MinSampleRate, MaxSampleRate)
	}
	return nil
}

// PCMInfo describes the produced sample stream for container writers.
type PCMInfo struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Result carries the outputs of one Encode run.
type Result struct {
	Samples []int16
	Frame   *Frame
}

// Encode runs the full pipeline for one image under one configuration:
// preprocessing, scan-line encoding and tone synthesis. It is stateless and
// deterministic; identical inputs produce bit-identical samples.
func Encode(cfg Config, src Raster) (*Result, error) {
	cfg = cfg.withDefault()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	spec := specFor(cfg.Mode)

	frame, err := preprocess(spec, src)
	if err != nil {
		return nil, fmt.Errorf("mode %s: %w", spec.Name, err)
	}

	synth := newSynthesizer(cfg.SampleRate, spec.TransmissionSeconds())
	if err := encodeTransmission(spec, frame, synth); err != nil {
		return nil, fmt.Errorf("mode %s at %d Hz: %w", spec.Name, cfg.SampleRate, err)
	}

	return &Result{Samples: synth.out, Frame: frame}, nil
}

// Modulator owns the buffers of its most recent Modulate call so callers can
// re-read samples, inspect the processed frame, and release memory between
// batch iterations. It wraps the stateless Encode with a result cache; a
// Modulator is not safe for concurrent use without external locking.
type Modulator struct {
	cfg     Config
	frame   *Frame
	samples []int16
}

// NewModulator validates cfg and returns a modulator holding no buffers yet.
func NewModulator(cfg Config) (*Modulator, error) {
	cfg = cfg.withDefault()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Modulator{cfg: cfg}, nil
}

// Modulate encodes src and replaces both held buffers with the new results.
// On failure the previously held buffers are left untouched; there is no
// partial replacement.
func (m *Modulator) Modulate(src Raster) ([]int16, error) {
	res, err := Encode(m.cfg, src)
	if err != nil {
		return nil, err
	}

	m.frame = res.Frame
	m.samples = res.Samples
	return m.samples, nil
}

func (m *Modulator) Config() Config { return m.cfg }

// Samples returns the held sample buffer as a read-only view; callers must
// not modify it. Nil after ClearAudioSamples or before the first Modulate.
func (m *Modulator) Samples() []int16 { return m.samples }

// Frame returns the held processed frame, or nil if none is held.
func (m *Modulator) Frame() *Frame { return m.frame }

// PCMInfo describes the stream a successful Modulate produces: mono 16-bit
// PCM at the configured rate.
func (m *Modulator) PCMInfo() PCMInfo {
	return PCMInfo{SampleRate: m.cfg.SampleRate, Channels: 1, BitDepth: 16}
}

// MemoryUsage reports the bytes held by the current buffers. It is computed
// from the buffers on every call, never maintained as a running counter.
type MemoryUsage struct {
	AudioBytes int
	ImageBytes int
	TotalBytes int
}

func (m *Modulator) MemoryUsage() MemoryUsage {
	u := MemoryUsage{AudioBytes: len(m.samples) * 2}
	if m.frame != nil {
		u.ImageBytes = m.frame.Bytes()
	}
	u.TotalBytes = u.AudioBytes + u.ImageBytes
	return u
}

// ClearAudioSamples releases the held sample buffer. Idempotent.
func (m *Modulator) ClearAudioSamples() { m.samples = nil }

// ClearImageMemory releases the held processed frame. Idempotent.
func (m *Modulator) ClearImageMemory() { m.frame = nil }

// ClearMemory releases both held buffers.
func (m *Modulator) ClearMemory() {
	m.ClearAudioSamples()
	m.ClearImageMemory()
}
