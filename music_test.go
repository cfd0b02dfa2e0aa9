// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewMusic_FromFile(t *testing.T) {
	useMockDevice(t)

	path := writeWavFixture(t, 44100, sineSamples(4410))

	msc, err := NewMusic(path)
	if err != nil {
		t.Fatalf("NewMusic() error = %v", err)
	}
	defer msc.Close()

	if msc.State() != Initial {
		t.Errorf("State() = %v, want Initial", msc.State())
	}

	if tags := msc.Tags(); tags != (Tags{}) {
		t.Errorf("Tags() = %+v, want zero", tags)
	}
}

func TestNewMusic_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewMusic(filepath.Join(t.TempDir(), "missing.ogg"))
		if err == nil {
			t.Error("NewMusic() = nil error for missing file")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movie.mkv")
		if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := NewMusic(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("NewMusic() error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.wav")
		if err := os.WriteFile(path, []byte("RIFFgarbage"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewMusic(path); err == nil {
			t.Error("NewMusic() = nil error for corrupt file")
		}
	})
}

func TestMusic_StateMachine(t *testing.T) {
	ctx := useMockDevice(t)

	path := writeWavFixture(t, 44100, sineSamples(4410))
	msc, err := NewMusic(path)
	if err != nil {
		t.Fatalf("NewMusic() error = %v", err)
	}
	defer msc.Close()

	msc.Play()
	if !msc.IsPlaying() {
		t.Fatal("IsPlaying() = false after Play()")
	}

	msc.Pause()
	if msc.State() != Paused {
		t.Errorf("State() = %v, want Paused", msc.State())
	}

	before := len(ctx.Players())
	msc.Play() // resume
	if msc.State() != Playing {
		t.Errorf("State() after resume = %v, want Playing", msc.State())
	}
	if got := len(ctx.Players()); got != before {
		t.Errorf("resume created a new player: %d -> %d", before, got)
	}

	msc.Stop()
	if msc.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", msc.State())
	}

	// Play after Stop restarts the stream from the top.
	msc.Play()
	if msc.State() != Playing {
		t.Errorf("State() after restart = %v, want Playing", msc.State())
	}
}

func TestMusic_StreamsToCompletion(t *testing.T) {
	ctx := useMockDevice(t)

	const frames = 4410
	path := writeWavFixture(t, 44100, sineSamples(frames))

	msc, err := NewMusic(path)
	if err != nil {
		t.Fatalf("NewMusic() error = %v", err)
	}
	defer msc.Close()

	msc.Play()

	n, err := ctx.LastPlayer().Drain()
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	// Stereo int16 output: 4 bytes per frame, plus the interpolation tail.
	wantBytes := frames * 4
	if n < wantBytes-16 || n > wantBytes+16*4 {
		t.Errorf("drained %d bytes, want ≈%d", n, wantBytes)
	}

	if msc.State() != Stopped {
		t.Errorf("State() after drain = %v, want Stopped", msc.State())
	}
}

func TestMusic_RestartDecodesFromTop(t *testing.T) {
	ctx := useMockDevice(t)

	const frames = 2205
	path := writeWavFixture(t, 44100, sineSamples(frames))

	msc, err := NewMusic(path)
	if err != nil {
		t.Fatalf("NewMusic() error = %v", err)
	}
	defer msc.Close()

	msc.Play()
	if _, err := ctx.LastPlayer().Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	// A fresh Play after a full drain delivers the whole stream again.
	msc.Play()

	n, err := ctx.LastPlayer().Drain()
	if err != nil {
		t.Fatalf("second Drain() error = %v", err)
	}

	wantBytes := frames * 4
	if n < wantBytes-16 || n > wantBytes+16*4 {
		t.Errorf("second playback drained %d bytes, want ≈%d", n, wantBytes)
	}
}

func TestMusic_CloseTwice(t *testing.T) {
	useMockDevice(t)

	path := writeWavFixture(t, 44100, sineSamples(441))
	msc, err := NewMusic(path)
	if err != nil {
		t.Fatalf("NewMusic() error = %v", err)
	}

	msc.Play()

	if err := msc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := msc.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	msc.Play()
	if msc.IsPlaying() {
		t.Error("Play() after Close started playback")
	}
}

func TestMusic_ControllerDefaults(t *testing.T) {
	useMockDevice(t)

	path := writeWavFixture(t, 44100, sineSamples(441))
	msc, err := NewMusic(path)
	if err != nil {
		t.Fatalf("NewMusic() error = %v", err)
	}
	defer msc.Close()

	if got := msc.Volume(); got != 1 {
		t.Errorf("Volume() default = %v, want 1", got)
	}
	if got := msc.Pitch(); got != 1 {
		t.Errorf("Pitch() default = %v, want 1", got)
	}

	msc.SetVolume(0.3)
	if got := msc.Volume(); got != 0.3 {
		t.Errorf("Volume() = %v, want 0.3", got)
	}
}
