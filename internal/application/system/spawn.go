package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/ecs"
	"github.com/younwookim/stepanim/internal/infrastructure/config"
)

// SpawnPlayer creates the player entity described by the config
func SpawnPlayer(w *ecs.World, cfg *config.GameConfig) (ecs.EntityID, error) {
	variants, err := cfg.AnimationVariants()
	if err != nil {
		return 0, fmt.Errorf("player animations: %w", err)
	}
	id, err := w.CreatePlayer(ecs.PlayerSpec{
		X:          cfg.Player.Spawn.X,
		Y:          cfg.Player.Spawn.Y,
		MaxSpeed:   cfg.Movement.MaxSpeed,
		Animations: variants,
	})
	if err != nil {
		return 0, fmt.Errorf("spawn player: %w", err)
	}
	return id, nil
}

// AssetsFromConfig returns the player's audio handles
func AssetsFromConfig(cfg *config.GameConfig) *PlayerAssets {
	return &PlayerAssets{
		StepOutside: cfg.StepClip(region.Outside),
		StepCave:    cfg.StepClip(region.Cave),
		Volume:      cfg.Audio.Volume,
	}
}

// WorldBounds keeps a whole sprite tile on screen
func WorldBounds(cfg *config.GameConfig) Bounds {
	return Bounds{
		MaxX: float64(cfg.Display.ScreenWidth - cfg.Player.Atlas.TileWidth),
		MaxY: float64(cfg.Display.ScreenHeight - cfg.Player.Atlas.TileHeight),
	}
}

// NewSchedule wires every system from the config
func NewSchedule(cfg *config.GameConfig, mixer Mixer, log logrus.FieldLogger) *Schedule {
	return &Schedule{
		Movement:  NewMovementSystem(WorldBounds(cfg)),
		Areas:     NewAreaSystem(cfg.Areas.CaveStartX, log),
		Animation: NewAnimationSystem(log),
		StepSound: NewStepSoundSystem(log),
		Audio:     NewAudioSystem(mixer, log),
	}
}
