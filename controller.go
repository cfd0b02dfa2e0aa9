// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ik5/ears/utils"
)

// AudioController is the control surface shared by Sound and Music.
//
// Play, Pause and Stop drive the state machine described on State.
// Volume is a linear gain (1.0 = unattenuated); the effective gain is
// clamped between MinVolume and MaxVolume after distance attenuation.
// Pitch is a playback-rate multiplier (> 0; doubling raises an octave).
// Positions and directions are right-handed [x, y, z] coordinates; a
// relative source interprets its position as an offset from the listener.
// MaxDistance, ReferenceDistance and Attenuation parametrize the
// inverse-distance-clamped gain model applied to mono sources.
type AudioController interface {
	Play()
	Pause()
	Stop()
	IsPlaying() bool
	State() State

	SetVolume(volume float32)
	Volume() float32
	SetMinVolume(volume float32)
	MinVolume() float32
	SetMaxVolume(volume float32)
	MaxVolume() float32

	SetLooping(looping bool)
	IsLooping() bool

	SetPitch(pitch float32)
	Pitch() float32

	SetRelative(relative bool)
	IsRelative() bool

	SetPosition(position [3]float32)
	Position() [3]float32
	SetDirection(direction [3]float32)
	Direction() [3]float32

	SetMaxDistance(distance float32)
	MaxDistance() float32
	SetReferenceDistance(distance float32)
	ReferenceDistance() float32
	SetAttenuation(rolloff float32)
	Attenuation() float32
}

// properties holds the mutable per-source parameters. Scalars are
// atomics because the device goroutine reads them while control
// goroutines write; vectors go under a mutex.
type properties struct {
	volume    utils.AtomicFloat32
	minVolume utils.AtomicFloat32
	maxVolume utils.AtomicFloat32
	pitch     utils.AtomicFloat32
	rolloff   utils.AtomicFloat32
	refDist   utils.AtomicFloat32
	maxDist   utils.AtomicFloat32

	looping  atomic.Bool
	relative atomic.Bool

	vecMu     sync.Mutex
	position  [3]float32
	direction [3]float32
}

// init sets the parameter defaults in place. properties contains a
// mutex, so it is never constructed by value.
func (p *properties) init() {
	p.volume = utils.NewAtomicFloat32(1)
	p.minVolume = utils.NewAtomicFloat32(0)
	p.maxVolume = utils.NewAtomicFloat32(1)
	p.pitch = utils.NewAtomicFloat32(1)
	p.rolloff = utils.NewAtomicFloat32(1)
	p.refDist = utils.NewAtomicFloat32(1)
	p.maxDist = utils.NewAtomicFloat32(math.MaxFloat32)
}

// SetVolume sets the source gain. Negative values are ignored.
func (p *properties) SetVolume(volume float32) {
	if volume < 0 {
		return
	}
	p.volume.Store(volume)
}

func (p *properties) Volume() float32 { return p.volume.Load() }

func (p *properties) SetMinVolume(volume float32) {
	if volume < 0 {
		return
	}
	p.minVolume.Store(volume)
}

func (p *properties) MinVolume() float32 { return p.minVolume.Load() }

func (p *properties) SetMaxVolume(volume float32) {
	if volume < 0 {
		return
	}
	p.maxVolume.Store(volume)
}

func (p *properties) MaxVolume() float32 { return p.maxVolume.Load() }

func (p *properties) SetLooping(looping bool) { p.looping.Store(looping) }
func (p *properties) IsLooping() bool         { return p.looping.Load() }

// SetPitch sets the playback-rate multiplier. Non-positive values are
// ignored.
func (p *properties) SetPitch(pitch float32) {
	if pitch <= 0 {
		return
	}
	p.pitch.Store(pitch)
}

func (p *properties) Pitch() float32 { return p.pitch.Load() }

func (p *properties) SetRelative(relative bool) { p.relative.Store(relative) }
func (p *properties) IsRelative() bool          { return p.relative.Load() }

func (p *properties) SetPosition(position [3]float32) {
	p.vecMu.Lock()
	defer p.vecMu.Unlock()

	p.position = position
}

func (p *properties) Position() [3]float32 {
	p.vecMu.Lock()
	defer p.vecMu.Unlock()

	return p.position
}

func (p *properties) SetDirection(direction [3]float32) {
	p.vecMu.Lock()
	defer p.vecMu.Unlock()

	p.direction = direction
}

func (p *properties) Direction() [3]float32 {
	p.vecMu.Lock()
	defer p.vecMu.Unlock()

	return p.direction
}

func (p *properties) SetMaxDistance(distance float32) {
	if distance < 0 {
		return
	}
	p.maxDist.Store(distance)
}

func (p *properties) MaxDistance() float32 { return p.maxDist.Load() }

func (p *properties) SetReferenceDistance(distance float32) {
	if distance < 0 {
		return
	}
	p.refDist.Store(distance)
}

func (p *properties) ReferenceDistance() float32 { return p.refDist.Load() }

func (p *properties) SetAttenuation(rolloff float32) {
	if rolloff < 0 {
		return
	}
	p.rolloff.Store(rolloff)
}

func (p *properties) Attenuation() float32 { return p.rolloff.Load() }
