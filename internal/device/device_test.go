// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"testing"
	"time"
)

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	valid := Options{SampleRate: 44100, ChannelCount: 2, BufferDuration: 50 * time.Millisecond}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	badRate := Options{SampleRate: 0, ChannelCount: 2}
	if err := badRate.Validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Validate() = %v, want ErrInvalidOptions", err)
	}

	badChannels := Options{SampleRate: 44100, ChannelCount: 6}
	if err := badChannels.Validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Validate() = %v, want ErrInvalidOptions", err)
	}
}

func TestDefaultBufferDuration(t *testing.T) {
	t.Parallel()

	if d := DefaultBufferDuration(); d < 50*time.Millisecond {
		t.Errorf("DefaultBufferDuration() = %v, want >= 50ms", d)
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := New(Options{SampleRate: -1, ChannelCount: 2}, nil)
	if !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("New() error = %v, want ErrInvalidOptions", err)
	}
}
