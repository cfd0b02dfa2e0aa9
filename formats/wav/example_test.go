// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ears/audio"
	"github.com/ik5/ears/formats/wav"
)

// A WAV round trip: captured PCM written out with WriteWAV16 comes
// back through the decoder sample for sample.
func Example() {
	pcm := []int16{-1000, -500, 0, 500, 1000}

	stream := new(bytes.Buffer)
	if err := wav.WriteWAV16(stream, 8000, pcm); err != nil {
		fmt.Println("encode:", err)
		return
	}

	src, err := wav.Decoder{}.Decode(stream)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	buf := make([]float32, len(pcm))
	n, _ := src.ReadSamples(buf)

	for i := 0; i < n; i++ {
		fmt.Printf("%d ", int16(buf[i]*32768))
	}
	fmt.Println()
	// Output: -1000 -500 0 500 1000
}

// The decoder plugs into the playback engine through the format
// registry, keyed by file extension.
func ExampleDecoder() {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})

	dec, ok := reg.Get("wav")
	fmt.Println("registered:", ok)

	stream := new(bytes.Buffer)
	wav.WriteWAV16(stream, 16000, make([]int16, 16000))

	src, err := dec.Decode(stream)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	fmt.Println("rate:", src.SampleRate())
	fmt.Println("channels:", src.Channels())
	// Output:
	// registered: true
	// rate: 16000
	// channels: 1
}

// Decoding something that is not a WAV stream fails with ErrNotWavFile.
func ExampleDecoder_badInput() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("definitely not audio")))

	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	// Output: true
}

// Long streams decode in fixed-size chunks, so memory stays bounded
// regardless of file length.
func ExampleDecoder_streaming() {
	stream := new(bytes.Buffer)
	wav.WriteWAV16(stream, 8000, make([]int16, 10000))

	src, err := wav.Decoder{}.Decode(stream)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	buf := make([]float32, 1000)
	total := 0

	for {
		n, err := src.ReadSamples(buf)
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("read:", err)
			return
		}
	}

	fmt.Println("decoded samples:", total)
	// Output: decoded samples: 10000
}
