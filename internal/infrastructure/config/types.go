package config

import (
	"time"

	"github.com/younwookim/stepanim/internal/domain/animation"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Movement MovementConfig `yaml:"movement"`
	Player   PlayerConfig   `yaml:"player"`
	Audio    AudioConfig    `yaml:"audio"`
	Areas    AreasConfig    `yaml:"areas"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type MovementConfig struct {
	MaxSpeed float64 `yaml:"maxSpeed"` // pixels per second
}

type PlayerConfig struct {
	Spawn      PointConfig       `yaml:"spawn"`
	Atlas      AtlasConfig       `yaml:"atlas"`
	Animations []AnimationConfig `yaml:"animations"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// AtlasConfig describes the sprite sheet grid
type AtlasConfig struct {
	Image      string `yaml:"image"` // assets-relative path, optional
	TileWidth  int    `yaml:"tileWidth"`
	TileHeight int    `yaml:"tileHeight"`
	Columns    int    `yaml:"columns"`
	Rows       int    `yaml:"rows"`
}

// AnimationConfig describes one animation variant
type AnimationConfig struct {
	State      string        `yaml:"state"`
	Frames     int           `yaml:"frames"`
	Interval   time.Duration `yaml:"interval"` // e.g. "500ms"
	AtlasIndex int           `yaml:"atlasIndex"`
}

type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"` // 0-1
	// Steps maps an area name to its looping footstep clip (assets-relative)
	Steps map[string]string `yaml:"steps"`
}

type AreasConfig struct {
	CaveStartX float64 `yaml:"caveStartX"` // pixels; player X at or beyond is in the cave
	Start      string  `yaml:"start"`
}

// AnimationVariants converts the player's animation config to variants
func (c *GameConfig) AnimationVariants() ([]animation.Data, error) {
	out := make([]animation.Data, 0, len(c.Player.Animations))
	for _, a := range c.Player.Animations {
		state, err := animation.ParseState(a.State)
		if err != nil {
			return nil, err
		}
		out = append(out, animation.Data{
			Frames:     a.Frames,
			Interval:   a.Interval,
			State:      state,
			AtlasIndex: a.AtlasIndex,
		})
	}
	return out, nil
}

// FrameDuration returns the fixed update step
func (c *GameConfig) FrameDuration() time.Duration {
	if c.Display.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Display.Framerate)
}
