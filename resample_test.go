// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"math"
	"testing"

	"github.com/ik5/ears/internal/audiotest"
)

func TestResampleToMono16_StereoDownsample(t *testing.T) {
	t.Parallel()

	// One second of stereo 44.1kHz collapses to about one second of
	// mono 8kHz PCM.
	pcm, rate, err := ResampleToMono16(audiotest.Sine(44100, 2, 44100, 440), 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}

	want := 8000
	if len(pcm) < want-200 || len(pcm) > want+200 {
		t.Errorf("got %d samples, want ≈%d", len(pcm), want)
	}
}

func TestResampleToMono16_ConstantLevel(t *testing.T) {
	t.Parallel()

	pcm, _, err := ResampleToMono16(audiotest.Constant(16000, 1, 16000, 0.5), 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if len(pcm) == 0 {
		t.Fatal("got no samples")
	}

	// 0.5 quantizes to about 16384.
	for i, s := range pcm {
		if math.Abs(float64(s)-16384) > 200 {
			t.Fatalf("pcm[%d] = %d, want ≈16384", i, s)
		}
	}
}

func TestResampleToMono16_EmptySource(t *testing.T) {
	t.Parallel()

	pcm, rate, err := ResampleToMono16(audiotest.Constant(44100, 2, 0, 0), 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(pcm) != 0 {
		t.Errorf("got %d samples, want 0", len(pcm))
	}
}

func TestResampleToMono16_ClampsOverdrive(t *testing.T) {
	t.Parallel()

	// Samples beyond [-1, 1] clamp at the int16 rails instead of
	// wrapping.
	src := audiotest.New(8000, 1, 99, func(frame, _ int) float32 {
		switch frame % 3 {
		case 0:
			return 2
		case 1:
			return -2
		}
		return 0
	})

	pcm, _, err := ResampleToMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	for i, s := range pcm {
		if s < -32768 || s > 32767 {
			t.Errorf("pcm[%d] = %d, outside int16 range", i, s)
		}
	}
}

func BenchmarkResampleToMono16(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		src := audiotest.Sine(44100, 2, 44100, 440)
		_, _, _ = ResampleToMono16(src, 8000, 4096)
	}
}
