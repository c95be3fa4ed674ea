// SPDX-License-Identifier: EPL-2.0

// Package sstv encodes images into slow-scan television audio transmissions.
//
// SSTV sends a picture over a voice-bandwidth radio channel by mapping pixel
// intensities onto audio tones between 1500 and 2300 Hz, line by line. This
// package produces the complete transmission as 16-bit PCM: the calibration
// header that identifies the mode to receivers, the picture scan, and the
// closing trailer.
//
// # Supported Modes
//
// Four transmission modes are supported, covering the common protocol
// families:
//   - Robot 36: 320x240, YUV 4:2:0, about 36 seconds
//   - Scottie DX: 320x256, RGB, about 4.5 minutes
//   - Martin M1: 320x256, RGB, about 2 minutes
//   - PD-120: 640x496, YUV line pairs, about 2 minutes
//
// # Quick Start
//
// The simplest way to produce a transmission is Modulate:
//
//	img, _, _ := image.Decode(file)
//	samples, err := sstv.Modulate(img, modem.Robot36, 0)
//
// or write a WAV file directly:
//
//	out, _ := os.Create("transmission.wav")
//	err := sstv.WriteTransmission(out, img, modem.Robot36, 44100)
//
// Input images of any size are accepted; they are scaled to the mode's
// raster preserving aspect ratio and centered on a black background.
//
// # Processing Pipeline
//
// For more control, use the modem subpackage directly:
//
//	m, _ := modem.NewModulator(modem.Config{Mode: modem.MartinM1, SampleRate: 11025})
//	samples, _ := m.Modulate(modem.FromImage(img))
//
//	// Inspect or release the held buffers between images.
//	usage := m.MemoryUsage()
//	m.ClearMemory()
//
// # Output Format
//
// All modes produce mono 16-bit signed PCM. The sample rate is configurable
// from 6000 to 192000 Hz; the 6000 Hz default keeps files small while
// staying well above the 2300 Hz tone band. EstimateWAVSize predicts output
// file sizes before encoding.
package sstv
