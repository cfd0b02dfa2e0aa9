// SPDX-License-Identifier: EPL-2.0

// Package audio holds the decoded-sample plumbing the playback engine
// is built on: the Source and Decoder interfaces, the format registry,
// and the offline pipeline (Resampler, MonoMixer, BufferSource,
// ResampleToMono16).
//
// # Sources and decoders
//
// Every decoder in formats/ turns an encoded stream into a Source of
// interleaved float32 samples in [-1, 1]. Sources chain: a Resampler
// or MonoMixer wraps another Source and is itself one, so pipelines
// compose:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// ReadSamples follows the io.Reader convention: data may accompany
// io.EOF, and n == 0 with io.EOF means the stream is done.
//
// # Registry
//
// A Registry maps format keys to decoders. The playback engine seeds
// one with the built-in formats and routes NewSoundData and NewMusic
// through it; RegisterFormat at the engine level adds user decoders.
//
// # Offline pipeline
//
// ResampleToMono16 collects a whole Source as mono 16-bit PCM at a
// target rate — the recorder uses it to normalize captures before
// writing WAV, and it serves speech pipelines that want 8 or 16 kHz
// mono input. BufferSource adapts an in-memory sample slice to the
// Source interface for the same pipeline.
package audio
