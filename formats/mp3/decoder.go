// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/ears/audio"
)

// mp3Reader is the slice of gomp3.Decoder the source needs. Keeping it
// narrow lets tests feed synthetic PCM without real MP3 fixtures.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// source converts the 16-bit little-endian PCM stream go-mp3 produces
// into float32 frames for the playback engine.
type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 2 } // go-mp3 always renders stereo
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}

	n, err := s.dec.Read(s.buf[:want])

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = float32(v) / 32768
	}

	if samples > 0 {
		// a trailing EOF is reported on the next call
		return samples, nil
	}

	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("read mp3 frames: %w", err)
	}

	return 0, io.EOF
}

// Decoder decodes MPEG layer 3 streams via go-mp3, registered under
// the "mp3" format tag.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("open mp3 stream: %w", err)
	}

	return &source{dec: dec, sampleRate: dec.SampleRate()}, nil
}
