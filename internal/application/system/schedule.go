package system

import (
	"time"

	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/ecs"
)

// Resources is the per-frame shared state systems read from
type Resources struct {
	Delta  time.Duration
	Input  InputState
	Area   *region.Area   // nil until an area is entered
	Assets *PlayerAssets // nil until player assets are loaded
}

// Schedule runs the systems in their fixed per-frame order:
//
//	input -> movement -> area -> animation timers ->
//	[animation state -> atlas -> step sound] -> audio
//
// The bracketed chain only runs once both the area and the player assets
// exist.
type Schedule struct {
	Movement  *MovementSystem
	Areas     *AreaSystem // optional
	Animation *AnimationSystem
	StepSound *StepSoundSystem
	Audio     *AudioSystem
}

// Run executes one frame
func (s *Schedule) Run(w *ecs.World, res *Resources) {
	ApplyIntents(w, Intents(w, res.Input))
	s.Movement.Update(w, res.Delta)
	if s.Areas != nil && res.Area != nil {
		*res.Area = s.Areas.Update(w, *res.Area)
	}

	s.Animation.UpdateTimers(w, res.Delta)

	if res.Area != nil && res.Assets != nil {
		s.Animation.UpdateMovement(w)
		s.Animation.UpdateAtlas(w)
		s.StepSound.Update(w, *res.Area, res.Assets)
	}

	s.Audio.Update(w)
}
