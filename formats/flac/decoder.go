// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	mewkizflac "github.com/mewkiz/flac"

	"github.com/ik5/ears/audio"
)

type source struct {
	stream     *mewkizflac.Stream
	sampleRate int
	channels   int
	scale      float32 // 1 / 2^(bitsPerSample-1)

	// pending holds interleaved samples decoded from the current frame
	// that have not been handed out yet.
	pending []float32
	offset  int
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	return s.stream.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Hand out leftovers from the previous frame first
	if s.offset < len(s.pending) {
		n := copy(dst, s.pending[s.offset:])
		s.offset += n
		return n, nil
	}

	if s.eof {
		return 0, io.EOF
	}

	// Decode the next frame and interleave its per-channel subframes
	frame, err := s.stream.ParseNext()
	if err == io.EOF {
		s.eof = true
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("parse flac frame: %w", err)
	}

	frames := len(frame.Subframes[0].Samples)
	need := frames * s.channels
	if cap(s.pending) < need {
		s.pending = make([]float32, need)
	}
	s.pending = s.pending[:need]

	for i := 0; i < frames; i++ {
		for ch := 0; ch < s.channels; ch++ {
			s.pending[i*s.channels+ch] = float32(frame.Subframes[ch].Samples[i]) * s.scale
		}
	}

	s.offset = copy(dst, s.pending)
	return s.offset, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := mewkizflac.New(r)
	if err != nil {
		return nil, ErrNotFlacFile
	}

	info := stream.Info
	bps := int(info.BitsPerSample)
	if bps < 4 || bps > 32 {
		return nil, ErrUnsupportedBitDepth
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      1.0 / float32(int64(1)<<(bps-1)),
	}, nil
}
