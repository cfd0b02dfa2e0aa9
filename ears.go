// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/ears/audio"
	"github.com/ik5/ears/formats/aiff"
	"github.com/ik5/ears/formats/flac"
	"github.com/ik5/ears/formats/mp3"
	"github.com/ik5/ears/formats/vorbis"
	"github.com/ik5/ears/formats/wav"
	"github.com/ik5/ears/internal/device"
)

// engine owns the output device context. One per process; the device
// context cannot be torn down once created.
type engine struct {
	cfg Config
	ctx device.Context
}

var (
	engineMu  sync.Mutex
	eng       *engine
	engineErr error

	// newDeviceContext is swapped by tests for a mock device.
	newDeviceContext = device.New
)

// Init initializes the playback engine with DefaultConfig. Calling it is
// optional: Sound and Music initialize the engine lazily on first play.
// Init pins initialization to a chosen point so device errors surface
// there. Idempotent; once an attempt has failed, the failure sticks.
func Init() error {
	engineMu.Lock()
	defer engineMu.Unlock()

	if eng != nil {
		return nil
	}

	return initLocked(DefaultConfig())
}

// InitWithConfig initializes the playback engine with an explicit
// configuration. Returns ErrAlreadyInitialized if the engine exists.
func InitWithConfig(cfg Config) error {
	engineMu.Lock()
	defer engineMu.Unlock()

	if eng != nil {
		return ErrAlreadyInitialized
	}

	return initLocked(cfg)
}

func initLocked(cfg Config) error {
	if engineErr != nil {
		return engineErr
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, err := newDeviceContext(device.Options{
		SampleRate:     cfg.SampleRate,
		ChannelCount:   cfg.ChannelCount,
		BufferDuration: cfg.BufferDuration,
	}, cfg.logger())
	if err != nil {
		engineErr = fmt.Errorf("open output device: %w", err)
		return engineErr
	}

	cfg.logger().Debug("ears: engine initialized",
		"rate", cfg.SampleRate, "channels", cfg.ChannelCount)

	eng = &engine{cfg: cfg, ctx: ctx}
	return nil
}

// currentEngine returns the engine, lazily initializing it.
func currentEngine() (*engine, error) {
	engineMu.Lock()
	defer engineMu.Unlock()

	if eng != nil {
		return eng, nil
	}

	if err := initLocked(DefaultConfig()); err != nil {
		return nil, err
	}

	return eng, nil
}

var formatRegistry = audio.NewRegistry()

func init() {
	RegisterFormat("wav", wav.Decoder{})
	RegisterFormat("mp3", mp3.Decoder{})
	RegisterFormat("ogg", vorbis.Decoder{})
	RegisterFormat("oga", vorbis.Decoder{})
	RegisterFormat("aiff", aiff.Decoder{})
	RegisterFormat("aif", aiff.Decoder{})
	RegisterFormat("flac", flac.Decoder{})
}

// RegisterFormat binds a file extension (without the dot, case
// insensitive) to a decoder. User formats may override the built-ins.
func RegisterFormat(ext string, d audio.Decoder) {
	formatRegistry.Register(strings.ToLower(strings.TrimPrefix(ext, ".")), d)
}

// Formats returns the registered file extensions, sorted.
func Formats() []string {
	return formatRegistry.List()
}

func decoderForPath(path string) (audio.Decoder, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := formatRegistry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return dec, nil
}
