// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG layer 3 streams for the playback engine.
//
// Decoding is delegated to github.com/hajimehoshi/go-mp3, which always
// renders stereo 16-bit PCM; the source converts that to float32
// frames in [-1, 1]. Registered under the "mp3" format tag. Encoding
// is not supported.
package mp3
