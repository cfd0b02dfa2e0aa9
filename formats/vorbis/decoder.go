// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/ears/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the slice of oggvorbis.Reader the source needs. Keeping
// it narrow lets tests feed synthetic frames without real Ogg fixtures.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source adapts an Ogg Vorbis stream to the playback engine. Vorbis
// already decodes to interleaved float32, so frames pass through
// without conversion.
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// oggvorbis requires the buffer length to be a multiple of the
	// channel count and returns the number of values written.
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if n > 0 {
		return n, nil
	}

	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("read vorbis frames: %w", err)
	}

	return 0, io.EOF
}

// Decoder decodes Ogg Vorbis streams via jfreymuth/oggvorbis,
// registered under the "ogg" format tag.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open vorbis stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
