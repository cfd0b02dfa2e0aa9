// SPDX-License-Identifier: EPL-2.0

package ears

import "github.com/ik5/ears/audio"

// ResampleToMono16 resamples src to targetRate, mixes it to mono and
// collects the result as 16-bit PCM. It is the offline counterpart of
// the playback pipeline, used by Recorder.SaveToFile and available for
// preparing buffers by hand. See audio.ResampleToMono16 for details.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	return audio.ResampleToMono16(src, targetRate, bufferSize)
}
