package system

import "github.com/younwookim/stepanim/internal/ecs"

// Intent represents an action that an entity wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a movement intention
type MoveIntent struct {
	EntityID  ecs.EntityID
	Direction ecs.Vec2 // normalized, zero to stand still
}

func (MoveIntent) isIntent() {}

// ApplyIntents writes intents into the matching components.
// Intents for entities without a movement controller are dropped.
func ApplyIntents(w *ecs.World, intents []Intent) {
	for _, in := range intents {
		switch it := in.(type) {
		case MoveIntent:
			mc, ok := w.Movement[it.EntityID]
			if !ok {
				continue
			}
			mc.Intent = it.Direction
			w.Movement[it.EntityID] = mc
		}
	}
}
