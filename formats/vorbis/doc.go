// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams for the playback engine.
//
// Decoding is delegated to github.com/jfreymuth/oggvorbis, which
// produces interleaved float32 frames directly, so no sample
// conversion happens here. Mono and stereo files at any sample rate
// are supported. Registered under the "ogg" format tag. Encoding is
// not supported.
package vorbis
