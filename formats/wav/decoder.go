// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/ears/audio"
)

// source streams interleaved 16-bit PCM frames out of a WAV data chunk,
// converting them to float32 in [-1, 1] as the playback engine expects.
type source struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}

	n, err := io.ReadFull(s.r, s.buf[:want])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("read wav data: %w", err)
	}

	samples := n / 2
	if samples == 0 {
		return 0, io.EOF
	}

	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = float32(v) / 32768
	}

	return samples, nil
}

// Decoder decodes PCM 16-bit WAV streams for the playback engine. Its
// zero value is ready to use and is what gets registered under "wav".
type Decoder struct{}

// Decode parses the RIFF header and scans chunks until it finds the
// data chunk. Only uncompressed 16-bit PCM is accepted.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("read riff header: %w", err)
	}

	if string(riff[:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var (
		sampleRate int
		channels   int
		haveFmt    bool
	)

	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrUnsupportedWavChunks
			}
			return nil, fmt.Errorf("read wav chunk: %w", err)
		}

		id := string(chunk[:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}

			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("read fmt chunk: %w", err)
			}

			format := binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bits := binary.LittleEndian.Uint16(body[14:16])

			if format != 1 || bits != 16 {
				return nil, ErrOnlyPCM16bitSupported
			}
			if channels < 1 || sampleRate < 1 {
				return nil, ErrUnsupportedWavLayout
			}

			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrUnsupportedWavLayout
			}

			return &source{
				r:          io.LimitReader(r, int64(size)),
				sampleRate: sampleRate,
				channels:   channels,
			}, nil

		default:
			// LIST, INFO and other metadata chunks are skipped.
			if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
				return nil, ErrUnsupportedWavChunks
			}
		}
	}
}
