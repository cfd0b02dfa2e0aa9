// SPDX-License-Identifier: EPL-2.0

// Package ears plays sounds. It decodes audio files and renders them
// through the default output device with per-source volume, pitch,
// looping and 3D spatialization, plus a global listener.
//
// # Supported Formats
//
// Decoders are picked by file extension:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//   - FLAC via formats/flac
//
// Additional formats can be registered with RegisterFormat.
//
// # Quick Start
//
// Load a short clip and play it:
//
//	snd, err := ears.NewSound("door.wav")
//	if err != nil {
//	    panic(err)
//	}
//	defer snd.Close()
//
//	snd.Play()
//	for snd.IsPlaying() {
//	    time.Sleep(10 * time.Millisecond)
//	}
//
// # Sound and Music
//
// A Sound decodes the whole file into memory at load time. The decoded
// buffer, a SoundData, is immutable and can back any number of Sounds
// at once:
//
//	data, _ := ears.NewSoundData("shot.wav")
//	a, _ := ears.NewSoundWithData(data)
//	b, _ := ears.NewSoundWithData(data)
//	a.Play()
//	b.Play() // same buffer, independent playback
//
// A Music decodes incrementally while it plays, keeping memory use
// constant for long assets. It owns its file handle, so it cannot be
// shared:
//
//	msc, _ := ears.NewMusic("theme.ogg")
//	defer msc.Close()
//	msc.Play()
//
// Both implement AudioController: play/pause/stop, volume, pitch,
// looping and 3D position controls.
//
// # Spatialization
//
// Mono sources are positioned in 3D space relative to the global
// listener; distance attenuation and stereo panning follow from the
// source and listener positions. Stereo sources play as-is with gain
// only.
//
//	snd.SetPosition([3]float32{5, 0, 0})
//	ears.Listener().SetOrientation([3]float32{0, 0, -1}, [3]float32{0, 1, 0})
//
// # Initialization
//
// The playback engine opens the output device lazily on first play.
// Call Init (or InitWithConfig) early to surface device errors at a
// chosen point. Recording uses a separate device, opened with
// InitInput.
package ears
