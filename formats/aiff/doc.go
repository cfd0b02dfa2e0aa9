// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files for the playback engine.
//
// Decoding is delegated to github.com/go-audio/aiff. Only 16-bit PCM
// is accepted; other bit depths fail with ErrOnlyPCM16bitSupported.
// go-audio needs a seekable input, so plain readers are buffered in
// memory before decoding. Registered under the "aiff" format tag.
package aiff
