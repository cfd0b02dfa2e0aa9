// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ik5/ears/audio"
	"github.com/ik5/ears/internal/device"
)

// Music plays a long asset, decoding it incrementally while the device
// pulls samples, so memory use stays constant regardless of file
// length. A Music owns its file handle and decoder state and therefore
// cannot be shared; load a SoundData instead when sharing is needed.
type Music struct {
	properties

	mu     sync.Mutex
	stream *streamSource
	tags   Tags
	state  State
	player device.Player
	closed bool
}

var _ AudioController = (*Music)(nil)

// NewMusic opens the file at path for streaming playback. The decoder
// is picked by file extension; the file stays open until Close.
func NewMusic(path string) (*Music, error) {
	dec, err := decoderForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music file: %w", err)
	}

	tags, err := ReadTagsFrom(f)
	if err != nil {
		tags = Tags{}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("seek music file: %w", err)
	}

	src, err := dec.Decode(noCloseReader{f})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	if src.Channels() < 1 || src.Channels() > 2 {
		src.Close()
		f.Close()
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, src.Channels())
	}

	m := &Music{
		stream: &streamSource{
			f:    f,
			dec:  dec,
			src:  src,
			rate: src.SampleRate(),
			ch:   src.Channels(),
		},
		tags: tags,
	}
	m.properties.init()
	return m, nil
}

func (m *Music) reconcileLocked() {
	if m.state == Playing && (m.player == nil || !m.player.IsPlaying()) {
		m.state = Stopped
	}
}

// Play starts playback. From Paused it resumes at the current offset;
// from any other state it rewinds the stream and restarts.
func (m *Music) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.reconcileLocked()

	if m.state == Paused && m.player != nil {
		m.player.Play()
		m.state = Playing
		return
	}

	e, err := currentEngine()
	if err != nil {
		log.Debug("ears: music play failed", "err", err)
		return
	}

	if m.player != nil {
		m.player.Close()
	}

	if err := m.stream.rewind(); err != nil {
		log.Debug("ears: music rewind failed", "err", err)
		return
	}

	rend := newRenderer(
		m.stream,
		&m.properties,
		defaultListener,
		e.cfg.SampleRate,
		e.cfg.ChannelCount,
	)

	m.player = e.ctx.NewPlayer(rend)
	m.player.Play()
	m.state = Playing
}

// Pause pauses playback, keeping the offset. No-op unless playing.
func (m *Music) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reconcileLocked()

	if m.state != Playing || m.player == nil {
		return
	}

	m.player.Pause()
	m.state = Paused
}

// Stop stops playback. The stream rewinds on the next Play.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()
}

func (m *Music) stopLocked() {
	if m.player != nil {
		m.player.Close()
		m.player = nil
	}

	if m.state != Initial {
		m.state = Stopped
	}
}

func (m *Music) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reconcileLocked()
	return m.state
}

func (m *Music) IsPlaying() bool {
	return m.State() == Playing
}

// Tags read from the file at construction.
func (m *Music) Tags() Tags {
	return m.tags
}

// Close stops playback and releases the decoder and file handle. Safe
// to call more than once.
func (m *Music) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.stopLocked()
	m.closed = true
	return m.stream.release()
}

// streamSource adapts an audio.Source decoding from an open file into
// the renderer's frameSource. Rewinding seeks the file back to the
// start and builds a fresh decoder.
type streamSource struct {
	f    *os.File
	dec  audio.Decoder
	src  audio.Source
	rate int
	ch   int
}

func (s *streamSource) sampleRate() int { return s.rate }
func (s *streamSource) channels() int   { return s.ch }

func (s *streamSource) readSamples(dst []float32) (int, error) {
	return s.src.ReadSamples(dst)
}

func (s *streamSource) rewind() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("close decoder: %w", err)
	}

	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek stream: %w", err)
	}

	src, err := s.dec.Decode(noCloseReader{s.f})
	if err != nil {
		return fmt.Errorf("restart decoder: %w", err)
	}

	s.src = src
	return nil
}

func (s *streamSource) close() error {
	return s.src.Close()
}

func (s *streamSource) release() error {
	s.src.Close()
	return s.f.Close()
}

// noCloseReader hides the Close and Seek methods of the wrapped file, so
// decoders that close or reposition their input cannot disturb the
// stream's file handle.
type noCloseReader struct {
	r io.Reader
}

func (n noCloseReader) Read(p []byte) (int, error) { return n.r.Read(p) }
