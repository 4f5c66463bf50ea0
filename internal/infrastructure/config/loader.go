package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/stepanim/internal/domain/animation"
	"github.com/younwookim/stepanim/internal/domain/region"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads and validates the game configuration
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid game.yaml: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the game cannot run with
func Validate(cfg *GameConfig) error {
	var errs []error

	if cfg.Display.ScreenWidth <= 0 || cfg.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d",
			cfg.Display.ScreenWidth, cfg.Display.ScreenHeight))
	}
	if cfg.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display framerate must be positive, got %d", cfg.Display.Framerate))
	}
	if cfg.Movement.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("movement maxSpeed must not be negative"))
	}

	atlas := cfg.Player.Atlas
	if atlas.TileWidth <= 0 || atlas.TileHeight <= 0 || atlas.Columns <= 0 || atlas.Rows <= 0 {
		errs = append(errs, fmt.Errorf("player atlas grid must be positive"))
	}

	variants, err := cfg.AnimationVariants()
	if err != nil {
		errs = append(errs, err)
	}
	if len(variants) == 0 && err == nil {
		errs = append(errs, fmt.Errorf("player needs at least one animation"))
	}
	if err == nil && len(variants) > 0 {
		provided := make(map[animation.State]bool, len(variants))
		for _, v := range variants {
			provided[v.State] = true
		}
		for _, st := range animation.States {
			if !provided[st] {
				errs = append(errs, fmt.Errorf("player: no animation for state %s", st))
			}
		}
	}
	seen := make(map[animation.State]bool)
	for i, a := range cfg.Player.Animations {
		if a.Frames <= 0 {
			errs = append(errs, fmt.Errorf("animation %d (%s): frames must be positive", i, a.State))
		}
		if a.Interval < 0 {
			errs = append(errs, fmt.Errorf("animation %d (%s): interval must not be negative", i, a.State))
		}
		if last := a.AtlasIndex + a.Frames; atlas.Columns > 0 && atlas.Rows > 0 && last > atlas.Columns*atlas.Rows {
			errs = append(errs, fmt.Errorf("animation %d (%s): frames exceed atlas (%d > %d)",
				i, a.State, last, atlas.Columns*atlas.Rows))
		}
		st, err := animation.ParseState(a.State)
		if err != nil {
			continue
		}
		if seen[st] {
			errs = append(errs, fmt.Errorf("animation %d (%s): duplicate state %s", i, a.State, st))
		}
		seen[st] = true
	}

	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within 0-1, got %v", cfg.Audio.Volume))
	}
	for _, a := range region.Areas {
		if cfg.StepClip(a) == "" {
			errs = append(errs, fmt.Errorf("audio steps: missing clip for area %s", a))
		}
	}
	for name := range cfg.Audio.Steps {
		if _, err := region.Parse(name); err != nil {
			errs = append(errs, fmt.Errorf("audio steps: %w", err))
		}
	}
	if cfg.Areas.Start != "" {
		if _, err := region.Parse(cfg.Areas.Start); err != nil {
			errs = append(errs, fmt.Errorf("areas start: %w", err))
		}
	}

	return errors.Join(errs...)
}

// StepClip returns the footstep clip configured for an area
func (c *GameConfig) StepClip(area region.Area) string {
	for name, clip := range c.Audio.Steps {
		if a, err := region.Parse(name); err == nil && a == area {
			return clip
		}
	}
	return ""
}

// StartArea returns the configured starting area (Outside by default)
func (c *GameConfig) StartArea() region.Area {
	a, err := region.Parse(c.Areas.Start)
	if err != nil {
		return region.Outside
	}
	return a
}
