package replay

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/application/system"
	"github.com/younwookim/stepanim/internal/domain/animation"
	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/ecs"
	"github.com/younwookim/stepanim/internal/infrastructure/config"
	"github.com/younwookim/stepanim/internal/infrastructure/sound"
)

// TraceFrame is the observable state after one simulated frame
type TraceFrame struct {
	F          int
	State      animation.State
	Frame      int
	AtlasIndex int
	FlipX      bool
	X, Y       float64
	Area       region.Area
	Sounds     int      // live sound entities
	Clips      []string // clips of open voices
}

// Trace is the per-frame result of a simulation
type Trace []TraceFrame

// Simulate replays recorded input through the full system schedule without
// a window or audio device
func Simulate(cfg *config.GameConfig, data ReplayData, log logrus.FieldLogger) (Trace, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	area := cfg.StartArea()
	if data.StartArea != "" {
		a, err := region.Parse(data.StartArea)
		if err != nil {
			return nil, fmt.Errorf("replay start area: %w", err)
		}
		area = a
	}

	w := ecs.NewWorld()
	player, err := system.SpawnPlayer(w, cfg)
	if err != nil {
		return nil, err
	}

	mixer := sound.NewNullMixer()
	sched := system.NewSchedule(cfg, mixer, log)
	res := &system.Resources{
		Delta:  cfg.FrameDuration(),
		Area:   &area,
		Assets: system.AssetsFromConfig(cfg),
	}

	replayer := NewReplayer(data)
	trace := make(Trace, 0, replayer.TotalFrames())
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		res.Input = input
		sched.Run(w, res)

		anim := w.Animation[player]
		sprite := w.Sprite[player]
		pos := w.Position[player]
		trace = append(trace, TraceFrame{
			F:          replayer.CurrentFrame() - 1,
			State:      anim.State(),
			Frame:      anim.Frame(),
			AtlasIndex: sprite.AtlasIndex,
			FlipX:      sprite.FlipX,
			X:          pos.X,
			Y:          pos.Y,
			Area:       area,
			Sounds:     w.CountSounds(),
			Clips:      mixer.ActiveClips(),
		})
	}
	sched.Audio.Close()

	return trace, nil
}

// Summary counts what happened over a trace
type Summary struct {
	Frames        int
	WalkingFrames int
	SoundStarts   int
	AreaChanges   int
	MaxSounds     int
}

// Summarize reduces a trace to counters
func (t Trace) Summarize() Summary {
	var s Summary
	s.Frames = len(t)
	prevSounds := 0
	for i, f := range t {
		if f.State == animation.Walking {
			s.WalkingFrames++
		}
		if f.Sounds > prevSounds {
			s.SoundStarts += f.Sounds - prevSounds
		}
		if f.Sounds > s.MaxSounds {
			s.MaxSounds = f.Sounds
		}
		if i > 0 && f.Area != t[i-1].Area {
			s.AreaChanges++
		}
		prevSounds = f.Sounds
	}
	return s
}
