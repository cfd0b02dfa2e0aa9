// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"sync"
)

// Source is a stream of decoded PCM audio. Decoders return one; the
// playback and offline pipelines consume one.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels in each frame: 1 is mono, 2 is stereo.
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1, 1]
	// and returns the number of samples written. n == 0 with io.EOF
	// means the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the source's preferred read size in samples.
	BufSize() int
	// Close releases the decoder's resources.
	Close() error
}

// Decoder builds a Source from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (file extensions like "wav", "flac") to
// decoders. The playback engine keeps one, seeded with the built-in
// formats; user decoders may be added or swapped in at runtime.
type Registry struct {
	mtx    sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register binds a format key to d, replacing any previous binding.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

func (r *Registry) Unregister(format string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.codecs, format)
}

// List returns the registered format keys, sorted.
func (r *Registry) List() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for format := range r.codecs {
		formats = append(formats, format)
	}

	sort.Strings(formats)
	return formats
}
