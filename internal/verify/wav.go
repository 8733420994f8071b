package verify

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// Capture format: 16-bit mono PCM, the format the analysis tooling
	// and listening checks expect.
	wavBitDepth   = 16
	wavNumChans   = 1
	wavPCMFormat  = 1
	maxInt16Value = 32767.0
)

// WriteWAV captures a float signal as a 16-bit mono WAV file.
//
// Samples are clipped to [-1, 1] before quantization so an overshooting
// resampler run produces a hard-clipped capture instead of wraparound
// garbage.
func WriteWAV(path string, signal []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating WAV file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, wavNumChans, wavPCMFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: wavNumChans,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: wavBitDepth,
		Data:           make([]int, len(signal)),
	}

	for i, v := range signal {
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		buf.Data[i] = int(v * maxInt16Value)
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("writing WAV samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finalizing WAV file: %w", err)
	}
	return f.Close()
}
