// Package sound plays decoded clips for sound-effect entities.
//
// Two mixers are provided: Mixer plays through ebiten's audio context, and
// NullMixer only tracks voices, for headless runs and machines without
// audio assets.
package sound

import "errors"

// ErrUnknownClip is returned when playing a clip that was never loaded
var ErrUnknownClip = errors.New("unknown clip")

// Voice is a clip being played by a mixer
type Voice interface {
	Pause()
	Resume()
	IsPlaying() bool
	Close() error
}
