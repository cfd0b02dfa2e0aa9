// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic in-memory sample sources
// for decoder and pipeline tests.
package audiotest

import (
	"io"
	"math"
)

// Source generates interleaved samples from a waveform function. It
// satisfies the audio.Source interface without importing it.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	gen      func(frame, ch int) float32
}

// New returns a source producing frames frames of channels channels,
// each sample computed by gen.
func New(rate, channels, frames int, gen func(frame, ch int) float32) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, gen: gen}
}

// Sine returns a source producing a sine wave at freq Hz, identical on
// every channel.
func Sine(rate, channels, frames int, freq float64) *Source {
	return New(rate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

// Constant returns a source where every sample is value. A zero value
// is silence.
func Constant(rate, channels, frames int, value float32) *Source {
	return New(rate, channels, frames, func(_, _ int) float32 { return value })
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

// Rewind resets the read position so the source can be consumed again.
func (s *Source) Rewind() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	frames := len(dst) / s.channels
	if left := s.frames - s.pos; frames > left {
		frames = left
	}

	for f := 0; f < frames; f++ {
		for ch := 0; ch < s.channels; ch++ {
			dst[f*s.channels+ch] = s.gen(s.pos+f, ch)
		}
	}
	s.pos += frames

	if s.pos >= s.frames {
		return frames * s.channels, io.EOF
	}
	return frames * s.channels, nil
}
