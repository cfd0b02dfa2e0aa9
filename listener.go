// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"sync"

	"github.com/ik5/ears/utils"
)

// ListenerState is the global listener: master gain, position and
// orientation. Every playing source is rendered against it, so changes
// are heard live.
type ListenerState struct {
	volume utils.AtomicFloat32

	mu       sync.Mutex
	position [3]float32
	at       [3]float32
	up       [3]float32
}

var defaultListener = &ListenerState{
	volume: utils.NewAtomicFloat32(1),
	at:     [3]float32{0, 0, -1},
	up:     [3]float32{0, 1, 0},
}

// Listener returns the global listener.
func Listener() *ListenerState {
	return defaultListener
}

// SetVolume sets the master gain. Negative values are ignored.
func (l *ListenerState) SetVolume(volume float32) {
	if volume < 0 {
		return
	}
	l.volume.Store(volume)
}

func (l *ListenerState) Volume() float32 { return l.volume.Load() }

func (l *ListenerState) SetPosition(position [3]float32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.position = position
}

func (l *ListenerState) Position() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.position
}

// SetOrientation sets the facing (at) and up vectors. Zero vectors are
// ignored; the pair does not have to be orthonormal.
func (l *ListenerState) SetOrientation(at, up [3]float32) {
	if vecLen(at) == 0 || vecLen(up) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.at = at
	l.up = up
}

func (l *ListenerState) Orientation() (at, up [3]float32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.at, l.up
}

// frame returns position, at and up in one locked read for the renderer.
func (l *ListenerState) frame() (position, at, up [3]float32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.position, l.at, l.up
}
