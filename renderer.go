// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"encoding/binary"
	"io"

	"github.com/ik5/ears/utils"
)

// frameSource feeds decoded frames to a renderer. Implementations:
// memorySource (cursor into a SoundData) and streamSource (incremental
// decode from a file, owned by Music).
type frameSource interface {
	sampleRate() int
	channels() int
	// readSamples fills dst with interleaved samples in [-1,1] and
	// returns the count written. io.EOF once exhausted.
	readSamples(dst []float32) (int, error)
	rewind() error
	close() error
}

// renderer turns a frameSource into the int16 little-endian interleaved
// byte stream the device pulls. Per read it applies pitch (cubic
// interpolation over a 4-frame window), spatial gain and panning, the
// min/max gain clamp and the listener master gain.
//
// The device goroutine is the only caller of Read; control goroutines
// only touch the shared properties, which are atomics or mutex-guarded.
type renderer struct {
	src   frameSource
	props *properties
	lst   *ListenerState

	outRate int
	outCh   int
	srcRate int
	srcCh   int

	// win holds frames t-1, t0, t+1, t+2 for cubic interpolation;
	// pos is the fractional position between win[1] and win[2].
	win    [4][]float32
	pos    float64
	primed bool

	frameBuf []float32
	partial  int

	eof      bool // source exhausted, looping already handled
	tail     int  // zero frames shifted in since EOF
	finished bool

	// pending holds the rest of a frame when the caller's buffer was
	// smaller than one output frame.
	pending []byte
}

// tailFrames is how many zero frames flush the interpolation window
// after the source ends.
const tailFrames = 3

func newRenderer(src frameSource, props *properties, lst *ListenerState, outRate, outCh int) *renderer {
	r := &renderer{
		src:      src,
		props:    props,
		lst:      lst,
		outRate:  outRate,
		outCh:    outCh,
		srcRate:  src.sampleRate(),
		srcCh:    src.channels(),
		frameBuf: make([]float32, src.channels()),
	}

	for i := range r.win {
		r.win[i] = make([]float32, r.srcCh)
	}

	return r
}

// nextFrame reads one source frame into dst, rewinding the source when
// looping. Returns false once the stream is exhausted.
func (r *renderer) nextFrame(dst []float32) bool {
	if r.eof {
		return false
	}

	need := r.srcCh

	// rewoundAt stops an empty looping source from rewinding forever.
	rewoundAt := -1

	for r.partial < need {
		n, err := r.src.readSamples(r.frameBuf[r.partial:need])
		r.partial += n

		if err == io.EOF {
			if r.props.IsLooping() && rewoundAt != r.partial {
				if rerr := r.src.rewind(); rerr == nil {
					rewoundAt = r.partial
					continue
				}
			}

			// A trailing partial frame is dropped.
			if r.partial < need {
				r.eof = true
				return false
			}
			r.eof = true
			break
		}

		if err != nil {
			r.eof = true
			if r.partial < need {
				return false
			}
			break
		}

		if n == 0 {
			r.eof = true
			return false
		}
	}

	copy(dst, r.frameBuf[:need])
	r.partial = 0
	return true
}

// shift advances the window one source frame, feeding silence past EOF.
func (r *renderer) shift() {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]

	if !r.nextFrame(r.win[3]) {
		for c := range r.win[3] {
			r.win[3][c] = 0
		}
		r.tail++
	}
}

func (r *renderer) prime() {
	if r.nextFrame(r.win[1]) {
		// Duplicate the first frame behind the cursor.
		copy(r.win[0], r.win[1])
	} else {
		r.tail = tailFrames
	}

	if !r.nextFrame(r.win[2]) {
		r.tail++
	}
	if !r.nextFrame(r.win[3]) {
		r.tail++
	}

	r.primed = true
}

// gains computes the left/right channel gains for this read. Mono
// sources get the full 3D path (attenuation plus constant-power pan);
// stereo sources get gain only, matching the backend behavior the
// original relied on.
func (r *renderer) gains() (left, right float32) {
	vol := r.props.Volume()
	min := r.props.MinVolume()
	max := r.props.MaxVolume()
	master := r.lst.Volume()

	if r.srcCh != 1 {
		g := clampGain(vol, min, max) * master
		return g, g
	}

	lpos, at, up := r.lst.frame()
	spos := r.props.Position()

	var toSource [3]float32
	if r.props.IsRelative() {
		toSource = spos
	} else {
		toSource = vecSub(spos, lpos)
	}

	att := attenuationGain(
		vecLen(toSource),
		r.props.ReferenceDistance(),
		r.props.MaxDistance(),
		r.props.Attenuation(),
	)

	g := clampGain(vol*att, min, max) * master

	if r.outCh == 1 {
		return g, g
	}

	pl, pr := panGains(azimuthPan(toSource, at, up))
	return g * pl, g * pr
}

func (r *renderer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(r.pending) > 0 {
		n := copy(p, r.pending)
		r.pending = r.pending[n:]
		return n, nil
	}

	if r.finished {
		return 0, io.EOF
	}

	if !r.primed {
		r.prime()
	}

	bytesPerFrame := r.outCh * 2
	frames := len(p) / bytesPerFrame

	// Always make progress: a caller buffer smaller than one frame is
	// served through the pending stash.
	buf := p
	stashed := false
	if frames == 0 {
		frames = 1
		buf = make([]byte, bytesPerFrame)
		stashed = true
	}

	step := float64(r.props.Pitch()) * float64(r.srcRate) / float64(r.outRate)
	if step <= 0 {
		step = float64(r.srcRate) / float64(r.outRate)
	}

	gl, gr := r.gains()

	written := 0
	for range frames {
		if r.tail >= tailFrames {
			r.finished = true
			break
		}

		x := float32(r.pos)
		s0 := utils.CubicInterpolate(r.win[0][0], r.win[1][0], r.win[2][0], r.win[3][0], x)

		var s1 float32
		if r.srcCh == 2 {
			s1 = utils.CubicInterpolate(r.win[0][1], r.win[1][1], r.win[2][1], r.win[3][1], x)
		}

		var left, right float32
		switch {
		case r.srcCh == 1 && r.outCh == 2:
			left, right = s0*gl, s0*gr
		case r.srcCh == 2 && r.outCh == 2:
			left, right = s0*gl, s1*gr
		case r.srcCh == 2 && r.outCh == 1:
			left = (s0 + s1) * 0.5 * gl
		default:
			left = s0 * gl
		}

		binary.LittleEndian.PutUint16(buf[written:], uint16(utils.Float32ToInt16(left)))
		if r.outCh == 2 {
			binary.LittleEndian.PutUint16(buf[written+2:], uint16(utils.Float32ToInt16(right)))
		}
		written += bytesPerFrame

		r.pos += step
		for r.pos >= 1 {
			r.shift()
			r.pos--
		}
	}

	if written == 0 {
		r.finished = true
		return 0, io.EOF
	}

	if stashed {
		n := copy(p, buf[:written])
		r.pending = buf[n:written]
		return n, nil
	}

	return written, nil
}

// memorySource is a cursor into a shared SoundData buffer. Rewind is a
// cursor reset; many memorySources may walk the same SoundData.
type memorySource struct {
	data *SoundData
	pos  int
}

func (m *memorySource) sampleRate() int { return m.data.sampleRate }
func (m *memorySource) channels() int   { return m.data.channels }
func (m *memorySource) rewind() error   { m.pos = 0; return nil }
func (m *memorySource) close() error    { return nil }

func (m *memorySource) readSamples(dst []float32) (int, error) {
	if m.pos >= len(m.data.samples) {
		return 0, io.EOF
	}

	n := copy(dst, m.data.samples[m.pos:])
	m.pos += n

	if m.pos >= len(m.data.samples) {
		return n, io.EOF
	}

	return n, nil
}
