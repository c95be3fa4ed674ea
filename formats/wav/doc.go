// SPDX-License-Identifier: EPL-2.0

// Package wav writes PCM sample streams as WAV files.
//
// It wraps the github.com/go-audio/wav encoder behind a single call shaped
// for the transmission pipeline: mono, 16-bit, one buffer of samples in,
// one finished file out.
//
// # Writing WAV Files
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// WriteWAV16 needs an io.WriteSeeker, not a plain io.Writer, because the
// RIFF chunk sizes are seeked back and patched after the sample data is
// written. An os.File or a bytes-backed seeker both qualify; a network
// stream does not.
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: the audio samples
//
// FileSize predicts the output size from a sample count, which is useful
// for preallocating buffers or reporting expected file sizes up front.
package wav
