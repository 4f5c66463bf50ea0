package system

import (
	"time"

	"github.com/younwookim/stepanim/internal/ecs"
)

// Bounds is the rectangle positions are kept inside
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// MovementSystem moves entities along their intent
type MovementSystem struct {
	bounds Bounds
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(bounds Bounds) *MovementSystem {
	return &MovementSystem{bounds: bounds}
}

// Update applies Intent * MaxSpeed for dt to every controlled position
func (s *MovementSystem) Update(w *ecs.World, dt time.Duration) {
	secs := dt.Seconds()
	for id, mc := range w.Movement {
		pos, ok := w.Position[id]
		if !ok || mc.Intent.IsZero() {
			continue
		}
		step := mc.Intent.Scale(mc.MaxSpeed * secs)
		pos.X = clamp(pos.X+step.X, s.bounds.MinX, s.bounds.MaxX)
		pos.Y = clamp(pos.Y+step.Y, s.bounds.MinY, s.bounds.MaxY)
		w.Position[id] = pos
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
