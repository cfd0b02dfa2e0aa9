// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM 16-bit WAV streams.
//
// Decoder implements audio.Decoder and is what the playback engine
// registers under the "wav" format tag; it accepts mono and stereo
// 16-bit PCM at any sample rate and skips metadata chunks. WriteWAV16
// is the counterpart used when saving recordings: it writes mono
// 16-bit PCM with a canonical 44-byte header.
//
// Compressed WAV variants and other bit depths are rejected with
// ErrOnlyPCM16bitSupported.
package wav
