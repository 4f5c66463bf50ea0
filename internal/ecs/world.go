package ecs

import (
	"sort"

	"github.com/younwookim/stepanim/internal/domain/animation"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position  map[EntityID]Position
	Movement  map[EntityID]MovementController
	Sprite    map[EntityID]Sprite
	Animation map[EntityID]*animation.Animation
	Sound     map[EntityID]SoundEffect
	Name      map[EntityID]string

	// Tags
	IsPlayer map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Position:  make(map[EntityID]Position),
		Movement:  make(map[EntityID]MovementController),
		Sprite:    make(map[EntityID]Sprite),
		Animation: make(map[EntityID]*animation.Animation),
		Sound:     make(map[EntityID]SoundEffect),
		Name:      make(map[EntityID]string),
		IsPlayer:  make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Movement, id)
	delete(w.Sprite, id)
	delete(w.Animation, id)
	delete(w.Sound, id)
	delete(w.Name, id)
	delete(w.IsPlayer, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has any component
func (w *World) Exists(id EntityID) bool {
	if _, ok := w.Position[id]; ok {
		return true
	}
	if _, ok := w.Sound[id]; ok {
		return true
	}
	_, ok := w.Name[id]
	return ok
}

// PlayerSpec holds everything needed to spawn the player character
type PlayerSpec struct {
	X, Y       float64
	MaxSpeed   float64
	Animations []animation.Data
}

// CreatePlayer creates a player entity
func (w *World) CreatePlayer(spec PlayerSpec) (EntityID, error) {
	anim, err := animation.New(spec.Animations)
	if err != nil {
		return 0, err
	}

	id := w.NewEntity()

	w.Position[id] = Position{X: spec.X, Y: spec.Y}
	w.Movement[id] = MovementController{MaxSpeed: spec.MaxSpeed}
	w.Sprite[id] = Sprite{AtlasIndex: anim.AtlasIndex()}
	w.Animation[id] = anim
	w.Name[id] = "Player"
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id, nil
}

// SpawnSound creates an entity carrying only a sound effect
func (w *World) SpawnSound(effect SoundEffect, name string) EntityID {
	id := w.NewEntity()
	w.Sound[id] = effect
	if name != "" {
		w.Name[id] = name
	}
	return id
}

// CountSounds returns the number of live sound entities
func (w *World) CountSounds() int {
	return len(w.Sound)
}

// Players returns player entity IDs in ascending order
func (w *World) Players() []EntityID {
	ids := make([]EntityID, 0, len(w.IsPlayer))
	for id := range w.IsPlayer {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() Position {
	return w.Position[w.PlayerID]
}
