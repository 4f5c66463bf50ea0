package playing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stepanim/internal/application/replay"
	"github.com/younwookim/stepanim/internal/application/scene"
	"github.com/younwookim/stepanim/internal/application/state"
	"github.com/younwookim/stepanim/internal/application/system"
	"github.com/younwookim/stepanim/internal/domain/animation"
	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/infrastructure/config"
	"github.com/younwookim/stepanim/internal/infrastructure/sound"
)

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Display:  config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 180, Scale: 1, Framerate: 60},
		Movement: config.MovementConfig{MaxSpeed: 120},
		Player: config.PlayerConfig{
			Spawn: config.PointConfig{X: 64, Y: 90},
			Atlas: config.AtlasConfig{TileWidth: 32, TileHeight: 32, Columns: 6, Rows: 2},
			Animations: []config.AnimationConfig{
				{State: "idling", Frames: 6, Interval: 500 * time.Millisecond, AtlasIndex: 0},
				{State: "walking", Frames: 6, Interval: 50 * time.Millisecond, AtlasIndex: 6},
			},
		},
		Audio: config.AudioConfig{
			Volume: 0.6,
			Steps:  map[string]string{"outside": "step_outside.ogg", "cave": "step_cave.ogg"},
		},
		Areas: config.AreasConfig{CaveStartX: 200, Start: "outside"},
	}
}

func newTestPlaying(t *testing.T, recordPath string) (*Playing, *sound.NullMixer) {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	mixer := sound.NewNullMixer()
	p, err := New(createTestConfig(), Options{Mixer: mixer, RecordPath: recordPath, Log: log})
	require.NoError(t, err)
	return p, mixer
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, _ := newTestPlaying(t, "")

	assert.NotNil(t, p.world)
	assert.Nil(t, p.recorder)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, region.Outside, p.Area())
	assert.Equal(t, animation.Idling, p.world.Animation[p.world.PlayerID].State())
	assert.Equal(t, time.Second/60, p.resources.Delta)
}

func TestNewPlaying_InvalidAnimations(t *testing.T) {
	cfg := createTestConfig()
	cfg.Player.Animations[0].State = "running"

	_, err := New(cfg, Options{Mixer: sound.NewNullMixer()})

	assert.Error(t, err)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p, _ := newTestPlaying(t, "")

	// Normal update should return nil (stay on same scene)
	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
}

func TestPlaying_StepWalkingStartsFootsteps(t *testing.T) {
	p, mixer := newTestPlaying(t, "")

	p.step(system.InputState{Right: true})

	id := p.world.PlayerID
	assert.Equal(t, animation.Walking, p.world.Animation[id].State())
	assert.Equal(t, 6, p.world.Sprite[id].AtlasIndex)
	assert.Equal(t, system.StepStepping, p.schedule.StepSound.State())
	assert.Equal(t, []string{"step_outside.ogg"}, mixer.ActiveClips())

	p.step(system.InputState{})

	assert.Equal(t, animation.Idling, p.world.Animation[id].State())
	assert.Equal(t, 0, mixer.Active())
}

func TestPlaying_StepIntoCaveSwapsClip(t *testing.T) {
	p, mixer := newTestPlaying(t, "")
	id := p.world.PlayerID
	pos := p.world.Position[id]
	pos.X = 199
	p.world.Position[id] = pos

	for i := 0; i < 3; i++ {
		p.step(system.InputState{Right: true})
	}

	assert.Equal(t, region.Cave, p.Area())
	assert.Equal(t, []string{"step_cave.ogg"}, mixer.ActiveClips())
}

func TestPlaying_TogglePausePausesVoices(t *testing.T) {
	p, _ := newTestPlaying(t, "")
	p.step(system.InputState{Left: true})

	p.togglePause()

	assert.Equal(t, state.StatePaused, p.State())
	assert.True(t, p.schedule.Audio.Paused())

	p.togglePause()

	assert.Equal(t, state.StatePlaying, p.State())
	assert.False(t, p.schedule.Audio.Paused())
}

func TestPlaying_OnEnter(t *testing.T) {
	p, _ := newTestPlaying(t, "")

	// OnEnter should not panic
	assert.NotPanics(t, func() {
		p.OnEnter()
	})
}

func TestPlaying_OnExitClosesVoices(t *testing.T) {
	p, mixer := newTestPlaying(t, "")
	p.step(system.InputState{Right: true})
	require.Equal(t, 1, mixer.Active())

	p.OnExit()

	assert.Equal(t, 0, mixer.Active())
}

func TestPlaying_WithRecorder(t *testing.T) {
	p, _ := newTestPlaying(t, filepath.Join(t.TempDir(), "test_replay.json"))

	assert.NotNil(t, p.recorder)

	p.step(system.InputState{Right: true})
	p.step(system.InputState{})

	assert.Equal(t, 2, p.recorder.FrameCount())
	assert.True(t, p.recorder.GetData().Frames[0].R)
}

func TestPlaying_OnExitWithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_playing_onexit.json")
	p, _ := newTestPlaying(t, path)

	p.step(system.InputState{Right: true})
	p.step(system.InputState{Right: true})

	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)
	assert.Equal(t, "Outside", data.StartArea)
}

func TestPlaying_OnExitWithoutFramesWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	p, _ := newTestPlaying(t, path)

	p.OnExit()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
