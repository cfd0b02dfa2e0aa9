// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// pcmChunkFrames is how many samples get encoded per Write call, so
// long recordings do not need a full-size byte buffer.
const pcmChunkFrames = 8192

// WriteWAV16 writes samples as a mono PCM 16-bit WAV stream at
// sampleRate. It is the storage half of the recorder: captured PCM
// goes through here when a recording is saved to disk.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	var header [44]byte

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // uncompressed PCM
	binary.LittleEndian.PutUint16(header[22:24], 1) // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)*2)
	binary.LittleEndian.PutUint16(header[32:34], 2)
	binary.LittleEndian.PutUint16(header[34:36], 16)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}

	buf := make([]byte, min(len(samples), pcmChunkFrames)*2)

	for len(samples) > 0 {
		chunk := samples[:min(len(samples), pcmChunkFrames)]
		samples = samples[len(chunk):]

		for i, s := range chunk {
			binary.LittleEndian.PutUint16(buf[2*i:2*i+2], uint16(s))
		}

		if _, err := w.Write(buf[:len(chunk)*2]); err != nil {
			return fmt.Errorf("write wav data: %w", err)
		}
	}

	return nil
}
