// SPDX-License-Identifier: EPL-2.0

// Package modem converts raster images into SSTV (slow-scan television)
// audio transmissions.
//
// The pipeline runs in three stages: an image preprocessor fits the source
// raster onto the selected mode's exact resolution (uniform scale, centered
// on black, mode color transform), a scan-line encoder turns the processed
// frame into the protocol's tone-segment stream (VIS header, sync pulses,
// per-pixel tones, trailer), and a tone synthesizer renders the segments
// into mono 16-bit PCM at any supported sample rate.
//
// # Supported Modes
//
//   - Robot 36 (320x240, 36 s scan)
//   - Scottie DX (320x256, 269.6 s scan)
//   - Martin M1 (320x256, 114.7 s scan)
//   - PD-120 (640x496, 120 s scan)
//
// Mode timings, VIS codes and line structure follow the published mode
// tables exactly; the generated signal decodes on independent SSTV
// receivers.
//
// # Quick Start
//
//	raster := modem.FromImage(img) // any decoded image.Image
//
//	mod, err := modem.NewModulator(modem.Config{
//		Mode:       modem.Robot36,
//		SampleRate: 44100,
//	})
//	if err != nil {
//		// Handle error
//	}
//
//	samples, err := mod.Modulate(raster)
//	// samples is mono 16-bit PCM; mod.PCMInfo() describes it
//
// For one-off runs without a held result, use the stateless form:
//
//	res, err := modem.Encode(modem.Config{Mode: modem.PD120}, raster)
//
// # Sample Rates
//
// Any rate in [6000, 192000] Hz works; the synthesizer keeps the total
// stream duration within one sample of nominal at every rate, and tone
// transitions are phase-continuous. The 6000 Hz default produces the
// smallest files that still carry the 1500-2300 Hz picture band cleanly.
//
// # Memory
//
// A transmission at high rates is large (PD-120 at 192 kHz is ~24 million
// samples). The Modulator exposes MemoryUsage for inspection and
// ClearAudioSamples / ClearImageMemory / ClearMemory for releasing buffers
// between batch iterations.
//
// # Error Handling
//
// Fallible operations return wrapped sentinel errors carrying mode, rate
// and dimensions:
//   - ErrInvalidSampleRate: rate outside the supported range
//   - ErrUnsupportedImageInput: unrecognized raster channel layout
//   - ErrEmptyImage: zero source dimension
//   - ErrEncodingFailure: broken internal invariant
//
// Passing an unknown Mode value panics; the mode set is closed.
package modem
