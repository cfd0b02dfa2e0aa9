// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/ears/utils"
)

// Resampler converts a source to a fixed output rate. It interpolates
// over a sliding four-frame window, cubic per channel, and runs a
// one-pole low-pass over incoming frames when downsampling to tame
// aliasing. Channel count is preserved.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     float64 // source frames consumed per output frame

	// win[1] and win[2] bracket the interpolation position; win[0] and
	// win[3] are the history and lookahead frames.
	win    [4][]float32
	pos    float64
	primed bool

	srcDone bool
	readErr error

	lowpass bool
	lpInit  bool
	lpState []float32
	buf     []float32
	scratch []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		lowpass:  src.SampleRate() > dstRate,
		lpState:  make([]float32, channels),
		buf:      make([]float32, channels),
		scratch:  make([]float32, channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("close resample source: %w", err)
	}
	return nil
}

// nextFrame pulls one source frame into dst, filtered when
// downsampling. Returns false once the source has nothing more.
func (r *Resampler) nextFrame(dst []float32) bool {
	if r.srcDone {
		return false
	}

	n, err := r.src.ReadSamples(r.buf[:r.channels])
	if err == io.EOF {
		r.srcDone = true
	} else if err != nil {
		r.srcDone = true
		r.readErr = fmt.Errorf("resample read: %w", err)
		return false
	}

	if n == 0 {
		return false
	}

	copy(dst, r.buf[:n])

	if r.lowpass {
		// Seed the filter with the first frame so it starts settled
		// instead of ramping up from silence.
		if !r.lpInit {
			copy(r.lpState, dst)
			r.lpInit = true
		}
		for c := 0; c < r.channels; c++ {
			dst[c] = 0.5*dst[c] + 0.5*r.lpState[c]
			r.lpState[c] = dst[c]
		}
	}

	return true
}

// prime fills the window with the first source frames, duplicating the
// last one read when the source is shorter than the window.
func (r *Resampler) prime() bool {
	if !r.nextFrame(r.win[0]) {
		return false
	}

	got := 1
	for i := 1; i < len(r.win); i++ {
		if !r.nextFrame(r.win[i]) {
			break
		}
		got++
	}

	for i := got; i < len(r.win); i++ {
		copy(r.win[i], r.win[got-1])
	}

	return true
}

// shift slides the window one source frame forward. Returns false when
// no further frame exists; the remaining window is not flushed, which
// trims at most a frame or two from the tail.
func (r *Resampler) shift() bool {
	if !r.nextFrame(r.scratch) {
		return false
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	copy(r.win[3], r.scratch)
	return true
}

// ReadSamples produces interleaved samples at the output rate. dst
// length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if !r.prime() {
			if r.readErr != nil {
				return 0, r.readErr
			}
			return 0, io.EOF
		}
		r.primed = true
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if !r.shift() {
				n := written * r.channels
				if r.readErr != nil {
					return n, r.readErr
				}
				if n == 0 {
					return 0, io.EOF
				}
				return n, io.EOF
			}
		}

		x := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
