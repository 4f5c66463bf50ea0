package system

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stepanim/internal/domain/animation"
	"github.com/younwookim/stepanim/internal/ecs"
	"github.com/younwookim/stepanim/internal/infrastructure/sound"
)

func testVariants() []animation.Data {
	return []animation.Data{
		{Frames: 6, Interval: 500 * time.Millisecond, State: animation.Idling, AtlasIndex: 0},
		{Frames: 6, Interval: 50 * time.Millisecond, State: animation.Walking, AtlasIndex: 6},
	}
}

func createTestPlayer(t *testing.T, w *ecs.World) ecs.EntityID {
	t.Helper()
	id, err := w.CreatePlayer(ecs.PlayerSpec{
		X:          100,
		Y:          50,
		MaxSpeed:   120,
		Animations: testVariants(),
	})
	require.NoError(t, err)
	return id
}

func setIntent(w *ecs.World, id ecs.EntityID, v ecs.Vec2) {
	mc := w.Movement[id]
	mc.Intent = v
	w.Movement[id] = mc
}

func testLogger() (*logrus.Logger, *logtest.Hook) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}

func testAssets() *PlayerAssets {
	return &PlayerAssets{StepOutside: "step_outside", StepCave: "step_cave", Volume: 0.6}
}

// fakeMixer records every voice it starts
type fakeMixer struct {
	voices []*fakeVoice
	fail   map[string]bool
}

func (m *fakeMixer) Play(clip string, loop bool, volume float64) (sound.Voice, error) {
	if m.fail[clip] {
		return nil, errors.New("no such clip")
	}
	v := &fakeVoice{clip: clip, loop: loop, volume: volume, playing: true}
	m.voices = append(m.voices, v)
	return v, nil
}

func (m *fakeMixer) open() []*fakeVoice {
	out := make([]*fakeVoice, 0, len(m.voices))
	for _, v := range m.voices {
		if !v.closed {
			out = append(out, v)
		}
	}
	return out
}

type fakeVoice struct {
	clip    string
	loop    bool
	volume  float64
	playing bool
	closed  bool
}

func (v *fakeVoice) Pause()          { v.playing = false }
func (v *fakeVoice) Resume()         { v.playing = true }
func (v *fakeVoice) IsPlaying() bool { return v.playing }

func (v *fakeVoice) Close() error {
	v.playing = false
	v.closed = true
	return nil
}
