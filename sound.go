// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ik5/ears/internal/device"
)

// ErrNilData is returned when a Sound is constructed without a buffer.
var ErrNilData = errors.New("nil sound data")

// Sound plays a fully decoded clip. Sounds are lightweight: several of
// them can share one SoundData, each with its own playback position and
// control parameters.
type Sound struct {
	properties

	mu     sync.Mutex
	data   *SoundData
	state  State
	player device.Player
	closed bool
}

var _ AudioController = (*Sound)(nil)

// NewSound loads the file at path and wraps it in a Sound. To share the
// decoded buffer between several Sounds, use NewSoundData once and
// NewSoundWithData per instance.
func NewSound(path string) (*Sound, error) {
	data, err := NewSoundData(path)
	if err != nil {
		return nil, err
	}

	return NewSoundWithData(data)
}

// NewSoundWithData wraps an already decoded buffer. No IO is performed.
func NewSoundWithData(data *SoundData) (*Sound, error) {
	if data == nil {
		return nil, ErrNilData
	}

	s := &Sound{data: data}
	s.properties.init()
	return s, nil
}

// reconcileLocked folds natural end-of-playback into the state machine:
// a playing source whose device player has drained reads as Stopped.
func (s *Sound) reconcileLocked() {
	if s.state == Playing && (s.player == nil || !s.player.IsPlaying()) {
		s.state = Stopped
	}
}

// Play starts playback. From Paused it resumes at the current offset;
// from any other state, including Playing, it restarts from the
// beginning.
func (s *Sound) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.reconcileLocked()

	if s.state == Paused && s.player != nil {
		s.player.Play()
		s.state = Playing
		return
	}

	e, err := currentEngine()
	if err != nil {
		log.Debug("ears: sound play failed", "err", err)
		return
	}

	if s.player != nil {
		s.player.Close()
	}

	rend := newRenderer(
		&memorySource{data: s.data},
		&s.properties,
		defaultListener,
		e.cfg.SampleRate,
		e.cfg.ChannelCount,
	)

	s.player = e.ctx.NewPlayer(rend)
	s.player.Play()
	s.state = Playing
}

// Pause pauses playback, keeping the offset. No-op unless playing.
func (s *Sound) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconcileLocked()

	if s.state != Playing || s.player == nil {
		return
	}

	s.player.Pause()
	s.state = Paused
}

// Stop stops playback and resets the offset. No-op in Initial.
func (s *Sound) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

func (s *Sound) stopLocked() {
	if s.player != nil {
		s.player.Close()
		s.player = nil
	}

	if s.state != Initial {
		s.state = Stopped
	}
}

func (s *Sound) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconcileLocked()
	return s.state
}

func (s *Sound) IsPlaying() bool {
	return s.State() == Playing
}

// Data returns the shared decoded buffer.
func (s *Sound) Data() *SoundData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data
}

// SetData swaps the decoded buffer, stopping playback first. A nil data
// is ignored.
func (s *Sound) SetData(data *SoundData) {
	if data == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.stopLocked()
	s.data = data
}

// Tags of the underlying buffer's file.
func (s *Sound) Tags() Tags {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.tags
}

// Close releases the device player. Safe to call more than once.
func (s *Sound) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.stopLocked()
	s.closed = true
	return nil
}
