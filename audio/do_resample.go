// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/ears/utils"
)

// ResampleToMono16 runs src through the offline pipeline — resample to
// targetRate, average down to mono, quantize to 16-bit PCM — and
// collects the full result. bufferSize is the pull size in samples; the
// returned rate is targetRate.
//
// The recorder uses this to normalize captures before writing WAV;
// callers wanting a streaming pipeline compose NewResampler and
// NewMonoMixer directly.
func ResampleToMono16(src Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono := NewMonoMixer(NewResampler(src, targetRate))

	var pcm []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm = append(pcm, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			return pcm, targetRate, nil
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("resample pipeline: %w", err)
		}
	}
}
