package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stepanim/internal/domain/animation"
	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/ecs"
	"github.com/younwookim/stepanim/internal/infrastructure/config"
)

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Display:  config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 180, Scale: 1, Framerate: 60},
		Movement: config.MovementConfig{MaxSpeed: 90},
		Player: config.PlayerConfig{
			Spawn: config.PointConfig{X: 12, Y: 34},
			Atlas: config.AtlasConfig{TileWidth: 32, TileHeight: 32, Columns: 6, Rows: 2},
			Animations: []config.AnimationConfig{
				{State: "idling", Frames: 6, Interval: 500 * time.Millisecond, AtlasIndex: 0},
				{State: "walking", Frames: 6, Interval: 50 * time.Millisecond, AtlasIndex: 6},
			},
		},
		Audio: config.AudioConfig{
			Volume: 0.7,
			Steps:  map[string]string{"outside": "out.ogg", "cave": "cave.ogg"},
		},
		Areas: config.AreasConfig{CaveStartX: 150},
	}
}

func TestSpawnPlayer(t *testing.T) {
	w := ecs.NewWorld()

	id, err := SpawnPlayer(w, createTestConfig())
	require.NoError(t, err)

	assert.Equal(t, ecs.Position{X: 12, Y: 34}, w.Position[id])
	assert.Equal(t, 90.0, w.Movement[id].MaxSpeed)
	assert.Equal(t, animation.Idling, w.Animation[id].State())
}

func TestSpawnPlayer_BadState(t *testing.T) {
	cfg := createTestConfig()
	cfg.Player.Animations[0].State = "flying"

	_, err := SpawnPlayer(ecs.NewWorld(), cfg)

	assert.ErrorContains(t, err, "player animations")
}

func TestAssetsFromConfig(t *testing.T) {
	assets := AssetsFromConfig(createTestConfig())

	assert.Equal(t, "out.ogg", assets.StepFor(region.Outside))
	assert.Equal(t, "cave.ogg", assets.StepFor(region.Cave))
	assert.Equal(t, 0.7, assets.Volume)
}

func TestWorldBounds(t *testing.T) {
	assert.Equal(t, Bounds{MaxX: 288, MaxY: 148}, WorldBounds(createTestConfig()))
}

func TestNewSchedule(t *testing.T) {
	sched := NewSchedule(createTestConfig(), &fakeMixer{}, nil)

	assert.NotNil(t, sched.Movement)
	assert.NotNil(t, sched.Areas)
	assert.NotNil(t, sched.Animation)
	assert.NotNil(t, sched.StepSound)
	assert.NotNil(t, sched.Audio)
}
