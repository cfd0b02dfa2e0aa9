// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"

	"github.com/ik5/ears/audio"
	"github.com/ik5/ears/formats/wav"
)

const (
	captureRate     = 44100
	captureFrames   = 1024
	recordedWavRate = 44100
)

// RecordContext is the open default input device: 44100 Hz, mono,
// 16-bit frames. Obtain one with InitInput; it is independent from the
// playback engine.
type RecordContext struct {
	mu       sync.Mutex
	stream   *portaudio.Stream
	frameBuf []int16
	rate     int
	closed   bool
}

// InitInput opens the default input device for recording.
func InitInput() (*RecordContext, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize capture backend: %w", err)
	}

	buf := make([]int16, captureFrames)

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(captureRate), captureFrames, buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}

	return &RecordContext{
		stream:   stream,
		frameBuf: buf,
		rate:     captureRate,
	}, nil
}

// Close releases the input stream and the capture backend.
func (c *RecordContext) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	err := c.stream.Close()
	portaudio.Terminate()

	if err != nil {
		return fmt.Errorf("close input stream: %w", err)
	}
	return nil
}

// captureSource is what a Recorder drains. RecordContext implements it
// over portaudio; tests substitute an in-memory fake.
type captureSource interface {
	start() error
	stop() error
	// read blocks until one buffer of frames is available.
	read() error
	frames() []int16
	rate() int
}

func (c *RecordContext) start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	return c.stream.Start()
}

func (c *RecordContext) stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	return c.stream.Stop()
}

func (c *RecordContext) read() error {
	return c.stream.Read()
}

func (c *RecordContext) frames() []int16 { return c.frameBuf }
func (c *RecordContext) rate() int       { return c.rate }

// Recorder captures samples from an input context into memory. One
// capture goroutine drains the device between Start and Stop.
type Recorder struct {
	src captureSource

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan captureResult
	samples []int16
}

// captureResult is what the capture goroutine hands back on exit: the
// samples gathered so far and the read error that ended it, if any.
type captureResult struct {
	samples []int16
	err     error
}

func NewRecorder(ctx *RecordContext) *Recorder {
	return &Recorder{src: ctx}
}

// Start begins capturing. Returns ErrRecorderRunning if already started.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrRecorderRunning
	}

	if err := r.src.start(); err != nil {
		return fmt.Errorf("start capture: %w", err)
	}

	r.stopCh = make(chan struct{})
	r.doneCh = make(chan captureResult, 1)
	r.running = true

	go captureLoop(r.src, r.stopCh, r.doneCh)

	return nil
}

// captureLoop drains the device until stopCh closes. A read error ends
// the loop: the stream is gone (closed context, unplugged device) and
// retrying would spin.
func captureLoop(src captureSource, stopCh <-chan struct{}, doneCh chan<- captureResult) {
	var captured []int16

	for {
		select {
		case <-stopCh:
			doneCh <- captureResult{samples: captured}
			return
		default:
			if err := src.read(); err != nil {
				log.Debug("ears: capture read failed", "err", err)
				doneCh <- captureResult{samples: captured, err: err}
				return
			}
			captured = append(captured, src.frames()...)
		}
	}
}

// Stop signals the capture goroutine, collects its samples and stops
// the device stream. Returns ErrRecorderNotStarted when not running; a
// read failure that ended the capture early is reported here, with the
// samples gathered before it kept.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return ErrRecorderNotStarted
	}

	close(r.stopCh)
	res := <-r.doneCh
	r.samples = res.samples
	r.running = false

	stopErr := r.src.stop()

	if res.err != nil {
		return fmt.Errorf("capture read: %w", res.err)
	}
	if stopErr != nil {
		return fmt.Errorf("stop capture: %w", stopErr)
	}

	return nil
}

// Samples captured between the last Start and Stop.
func (r *Recorder) Samples() []int16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.samples
}

// SaveToFile writes the captured samples as name + ".wav", mono 16-bit
// at 44100 Hz. Captures done at another rate are resampled first.
// Returns ErrNoSamples when nothing was captured.
func (r *Recorder) SaveToFile(name string) error {
	r.mu.Lock()
	samples := r.samples
	srcRate := r.src.rate()
	r.mu.Unlock()

	if len(samples) == 0 {
		return ErrNoSamples
	}

	if srcRate != recordedWavRate {
		floats := make([]float32, len(samples))
		for i, s := range samples {
			floats[i] = float32(s) / 32768.0
		}

		resampled, _, err := audio.ResampleToMono16(
			audio.NewBufferSource(floats, srcRate, 1), recordedWavRate, 4096)
		if err != nil {
			return fmt.Errorf("resample capture: %w", err)
		}
		samples = resampled
	}

	f, err := os.Create(name + ".wav")
	if err != nil {
		return fmt.Errorf("create wav file: %w", err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, recordedWavRate, samples); err != nil {
		return fmt.Errorf("write wav file: %w", err)
	}

	return nil
}
