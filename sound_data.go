// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"fmt"
	"io"
	"os"
	"time"
)

// SoundData is a fully decoded clip: interleaved float32 samples plus
// the file's tags. It is immutable after construction, so any number of
// Sounds can share one SoundData concurrently without copying.
type SoundData struct {
	samples    []float32
	sampleRate int
	channels   int
	tags       Tags
}

// NewSoundData decodes the file at path entirely into memory. The
// decoder is picked by file extension from the package registry. Files
// with more than two channels are rejected.
func NewSoundData(path string) (*SoundData, error) {
	dec, err := decoderForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound file: %w", err)
	}
	defer f.Close()

	tags, err := ReadTagsFrom(f)
	if err != nil {
		tags = Tags{}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek sound file: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	defer src.Close()

	if src.Channels() < 1 || src.Channels() > 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, src.Channels())
	}

	var samples []float32
	buf := make([]float32, src.BufSize())

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", path, err)
		}
	}

	return &SoundData{
		samples:    samples,
		sampleRate: src.SampleRate(),
		channels:   src.Channels(),
		tags:       tags,
	}, nil
}

// SampleRate of the decoded samples in Hz.
func (d *SoundData) SampleRate() int { return d.sampleRate }

// ChannelCount of the decoded samples: 1 or 2.
func (d *SoundData) ChannelCount() int { return d.channels }

// SampleCount is the total number of interleaved samples
// (frames times channels).
func (d *SoundData) SampleCount() int { return len(d.samples) }

// Duration of the clip at its native rate.
func (d *SoundData) Duration() time.Duration {
	if d.sampleRate == 0 || d.channels == 0 {
		return 0
	}

	frames := len(d.samples) / d.channels
	return time.Duration(frames) * time.Second / time.Duration(d.sampleRate)
}

// Tags read from the file at load time.
func (d *SoundData) Tags() Tags { return d.tags }
