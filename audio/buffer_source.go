// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource is a Source backed by an in-memory slice of interleaved
// float32 samples. It does not copy the slice; callers must not mutate it
// while the source is in use.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	pos        int
}

// NewBufferSource wraps samples as a Source. samples are interleaved
// float32 values in [-1,1] at the given rate and channel count.
func NewBufferSource(samples []float32, sampleRate, channels int) *BufferSource {
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// ReadSamples copies the next samples into dst.
// Returns io.EOF once the buffer is exhausted.
func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}

// Rewind resets the read position to the start of the buffer.
func (b *BufferSource) Rewind() {
	b.pos = 0
}
