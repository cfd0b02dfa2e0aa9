// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/ears"
	"github.com/ik5/ears/formats/vorbis"
	"github.com/ik5/ears/formats/wav"
)

// Decoding an Ogg Vorbis file into a playback source.
func ExampleDecoder() {
	f, err := os.Open("track.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("%d Hz, %d channels\n", src.SampleRate(), src.Channels())
}

// Converting an Ogg Vorbis file to a mono 16kHz WAV through the
// offline pipeline.
func ExampleDecoder_convertToWav() {
	in, err := os.Open("track.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := vorbis.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	pcm, rate, err := ears.ResampleToMono16(src, 16000, 4096)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("track.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := wav.WriteWAV16(out, rate, pcm); err != nil {
		log.Fatal(err)
	}
}
