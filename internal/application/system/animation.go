package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/domain/animation"
	"github.com/younwookim/stepanim/internal/ecs"
)

// AnimationSystem advances sprite animations and maps movement intent to
// animation state
type AnimationSystem struct {
	log logrus.FieldLogger
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(log logrus.FieldLogger) *AnimationSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AnimationSystem{log: log}
}

// UpdateTimers advances every animation timer by delta
func (s *AnimationSystem) UpdateTimers(w *ecs.World, delta time.Duration) {
	for _, anim := range w.Animation {
		anim.UpdateTimer(delta)
	}
}

// UpdateMovement sets sprite facing and animation state (idling/walking)
// from each entity's movement intent
func (s *AnimationSystem) UpdateMovement(w *ecs.World) {
	for id, mc := range w.Movement {
		sprite, ok := w.Sprite[id]
		if !ok {
			continue
		}
		anim, ok := w.Animation[id]
		if !ok {
			continue
		}

		if dx := mc.Intent.X; dx != 0 {
			sprite.FlipX = dx < 0
			w.Sprite[id] = sprite
		}

		next := animation.Walking
		if mc.Intent.IsZero() {
			next = animation.Idling
		}
		if prev := anim.State(); prev != next {
			s.log.WithFields(logrus.Fields{
				"entity": id,
				"from":   prev,
				"to":     next,
			}).Debug("animation state changed")
		}
		anim.UpdateState(next)
	}
}

// UpdateAtlas copies the animation's atlas index to the sprite when the
// frame changed this tick
func (s *AnimationSystem) UpdateAtlas(w *ecs.World) {
	for id, anim := range w.Animation {
		if !anim.Changed() {
			continue
		}
		sprite, ok := w.Sprite[id]
		if !ok {
			continue
		}
		sprite.AtlasIndex = anim.AtlasIndex()
		w.Sprite[id] = sprite
	}
}
