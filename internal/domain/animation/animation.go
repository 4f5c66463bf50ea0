// Package animation holds the per-entity sprite animation state.
//
// An Animation owns an ordered list of variants (one per logical State), a
// repeating frame timer and the current frame. Systems tick the timer every
// frame, switch variants when the movement state changes, and read the atlas
// index back when the timer completed.
package animation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNoVariants is returned when an animation is built without variants
	ErrNoVariants = errors.New("animation needs at least one variant")
	// ErrInvalidFrames is returned for a variant with no frames
	ErrInvalidFrames = errors.New("animation variant needs at least one frame")
)

// State is the logical state an animation variant represents
type State int

const (
	Idling State = iota
	Walking
)

// States lists every state a character animation must provide
var States = []State{Idling, Walking}

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Idling:
		return "Idling"
	case Walking:
		return "Walking"
	default:
		return "Unknown"
	}
}

// ParseState parses a state name (case-insensitive)
func ParseState(name string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "idling", "idle":
		return Idling, nil
	case "walking", "walk":
		return Walking, nil
	default:
		return 0, fmt.Errorf("unknown animation state %q", name)
	}
}

// Data describes one animation variant
type Data struct {
	Frames     int           // number of frames in the sequence
	Interval   time.Duration // time per frame
	State      State
	AtlasIndex int // atlas index of the first frame
}

// Animation is the animation component of a character
type Animation struct {
	timer    Timer
	frame    int
	current  int
	variants []Data
}

// New creates an animation starting on the first variant
func New(variants []Data) (*Animation, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	for i, v := range variants {
		if v.Frames <= 0 {
			return nil, fmt.Errorf("variant %d (%s): %w", i, v.State, ErrInvalidFrames)
		}
	}

	owned := make([]Data, len(variants))
	copy(owned, variants)

	return &Animation{
		timer:    NewTimer(owned[0].Interval, Repeating),
		variants: owned,
	}, nil
}

// UpdateTimer advances the frame timer, stepping one frame on completion
func (a *Animation) UpdateTimer(delta time.Duration) {
	a.timer.Tick(delta)
	if !a.timer.Finished() {
		return
	}
	a.frame = (a.frame + 1) % a.variants[a.current].Frames
}

// UpdateState switches to the variant tagged with state if it differs from
// the current one. The frame restarts at 0 and the timer is re-ticked by its
// own remaining time so Changed reports true for this tick.
//
// Panics if no variant carries the requested state.
func (a *Animation) UpdateState(state State) {
	if a.State() == state {
		return
	}

	idx := a.indexOf(state)
	if idx < 0 {
		panic(fmt.Sprintf("animation: no variant for state %s", state))
	}

	a.current = idx
	a.frame = 0
	a.timer = NewTimer(a.variants[idx].Interval, Repeating)
	a.timer.Tick(a.timer.Remaining())
}

func (a *Animation) indexOf(state State) int {
	for i, v := range a.variants {
		if v.State == state {
			return i
		}
	}
	return -1
}

// Changed reports whether the frame changed this tick
func (a *Animation) Changed() bool {
	return a.timer.Finished()
}

// State returns the state of the current variant
func (a *Animation) State() State {
	return a.variants[a.current].State
}

// AtlasIndex returns the sprite index in the atlas
func (a *Animation) AtlasIndex() int {
	return a.variants[a.current].AtlasIndex + a.frame
}

// Frame returns the frame within the current variant
func (a *Animation) Frame() int {
	return a.frame
}

// Variant returns the current variant
func (a *Animation) Variant() Data {
	return a.variants[a.current]
}

// Variants returns the number of variants
func (a *Animation) Variants() int {
	return len(a.variants)
}
