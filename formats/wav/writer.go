// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// writeChunk is the number of samples converted per encoder write.
const writeChunk = 8192

// WriteWAV16 writes samples as a mono 16-bit PCM WAV file at sampleRate.
// The writer needs seeking because the RIFF sizes are patched into the
// header once the data length is known.
func WriteWAV16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	ints := make([]int, 0, writeChunk)

	// The encoder only emits the header on its first Write, so an empty
	// stream still goes through the loop once to produce a valid file.
	for i := 0; ; i += writeChunk {
		end := min(i+writeChunk, len(samples))
		ints = ints[:0]
		for _, s := range samples[i:end] {
			ints = append(ints, int(s))
		}
		buf.Data = ints
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("wav: write samples: %w", err)
		}
		if end == len(samples) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}
	return nil
}

// FileSize returns the size in bytes of the WAV file WriteWAV16 produces
// for sampleCount samples: a 44 byte header plus two bytes per sample.
func FileSize(sampleCount int) int {
	return 44 + 2*sampleCount
}
