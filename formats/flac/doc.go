// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to decode FLAC streams.
// FLAC is a free, lossless audio compression format.
//
// # Decoding FLAC Files
//
// Use the Decoder to read FLAC files:
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0].
//
// # Output Format
//
// FLAC decoder output:
//   - Sample format: float32 in range [-1.0, 1.0], normalized by the
//     stream's bit depth (16-bit and 24-bit streams are common)
//   - Channels: Depends on file (mono or stereo typically)
//   - Sample rate: Depends on file (commonly 44.1kHz or 48kHz)
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// # Error Handling
//
// The decoder returns these errors:
//   - ErrNotFlacFile: The input is not a valid FLAC stream
//   - ErrUnsupportedBitDepth: The stream's bit depth cannot be normalized
//
// # Limitations
//
// Note:
//   - FLAC encoding is not supported (decoding only)
//   - Decoding is frame-based; ReadSamples may return fewer samples
//     than requested at frame boundaries
package flac
