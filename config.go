// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/ik5/ears/internal/device"
)

// Config controls the playback engine.
type Config struct {
	// SampleRate of the output device in Hz. One of 22050, 44100, 48000.
	SampleRate int
	// ChannelCount of the output device: 1 (mono) or 2 (stereo).
	ChannelCount int
	// BufferDuration of the device buffer. Zero picks the platform default.
	BufferDuration time.Duration
	// Logger receives engine debug diagnostics. Nil uses log.Default().
	Logger *log.Logger
}

type envConfig struct {
	SampleRate int `env:"EARS_SAMPLE_RATE" envDefault:"44100"`
	Channels   int `env:"EARS_CHANNELS" envDefault:"2"`
	BufferMS   int `env:"EARS_BUFFER_MS" envDefault:"0"`
}

// DefaultConfig returns the standard configuration: 44100 Hz stereo with
// the platform default buffer, overridable through EARS_SAMPLE_RATE,
// EARS_CHANNELS and EARS_BUFFER_MS.
func DefaultConfig() Config {
	ec := envConfig{SampleRate: 44100, Channels: 2}
	if err := env.Parse(&ec); err != nil {
		log.Debug("ears: bad environment override, using defaults", "err", err)
		ec = envConfig{SampleRate: 44100, Channels: 2}
	}

	cfg := Config{
		SampleRate:   ec.SampleRate,
		ChannelCount: ec.Channels,
	}

	if ec.BufferMS > 0 {
		cfg.BufferDuration = time.Duration(ec.BufferMS) * time.Millisecond
	} else {
		cfg.BufferDuration = device.DefaultBufferDuration()
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.SampleRate {
	case 22050, 44100, 48000:
	default:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}

	if c.ChannelCount != 1 && c.ChannelCount != 2 {
		return fmt.Errorf("%w: channel count %d", ErrInvalidConfig, c.ChannelCount)
	}

	if c.BufferDuration < 0 {
		return fmt.Errorf("%w: buffer duration %v", ErrInvalidConfig, c.BufferDuration)
	}

	return nil
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}
