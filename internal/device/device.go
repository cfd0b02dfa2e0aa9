// SPDX-License-Identifier: EPL-2.0

// Package device wraps the platform audio output behind small interfaces
// so the playback engine can be tested without hardware.
package device

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"
)

// readyTimeout bounds how long New waits for the platform mixer to come up.
const readyTimeout = 5 * time.Second

// Options describe the output stream the context is opened with.
type Options struct {
	SampleRate     int
	ChannelCount   int
	BufferDuration time.Duration
}

func (o Options) Validate() error {
	if o.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidOptions, o.SampleRate)
	}

	if o.ChannelCount != 1 && o.ChannelCount != 2 {
		return fmt.Errorf("%w: channel count %d", ErrInvalidOptions, o.ChannelCount)
	}

	return nil
}

// DefaultBufferDuration returns the platform default output buffer size.
// macOS and Windows mixers need more headroom than ALSA.
func DefaultBufferDuration() time.Duration {
	switch runtime.GOOS {
	case "darwin":
		return 100 * time.Millisecond
	case "windows":
		return 80 * time.Millisecond
	default:
		return 50 * time.Millisecond
	}
}

// Player is one playing stream on the device. The device pulls
// int16 little-endian interleaved frames from the reader given to
// Context.NewPlayer.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}

// Context is an open output device. Contexts live for the whole process.
type Context interface {
	NewPlayer(r io.Reader) Player
}

type otoContext struct {
	ctx *oto.Context
}

func (c *otoContext) NewPlayer(r io.Reader) Player {
	return c.ctx.NewPlayer(r)
}

// New opens the default output device. The underlying backend reports
// readiness asynchronously; New waits for it, retrying the creation once
// since some platform mixers fail transiently right after boot or resume.
func New(o Options, logger *log.Logger) (Context, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	bufDur := o.BufferDuration
	if bufDur <= 0 {
		bufDur = DefaultBufferDuration()
	}

	op := &oto.NewContextOptions{
		SampleRate:   o.SampleRate,
		ChannelCount: o.ChannelCount,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufDur,
	}

	var (
		ctx   *oto.Context
		ready chan struct{}
		err   error
	)

	for attempt := 1; attempt <= 2; attempt++ {
		logger.Debug(
			"opening output device",
			"attempt", attempt,
			"rate", o.SampleRate,
			"channels", o.ChannelCount,
			"buffer", bufDur,
		)

		ctx, ready, err = oto.NewContext(op)
		if err == nil {
			break
		}

		logger.Debug("output device open failed", "attempt", attempt, "err", err)

		if attempt == 1 {
			time.Sleep(100 * time.Millisecond)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("create output context: %w", err)
	}

	select {
	case <-ready:
		logger.Debug("output device ready")
	case <-time.After(readyTimeout):
		return nil, ErrDeviceNotReady
	}

	return &otoContext{ctx: ctx}, nil
}
