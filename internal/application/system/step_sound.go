package system

import (
	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/domain/animation"
	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/ecs"
)

// StepSoundName names the footstep sound entity
const StepSoundName = "Step Sound"

// Footstep sound states and events
const (
	StepSilent   = "silent"
	StepStepping = "stepping"

	eventStep = "step"
	eventHalt = "halt"
)

// PlayerAssets holds the player's loaded audio handles
type PlayerAssets struct {
	StepOutside string
	StepCave    string
	Volume      float64
}

// StepFor returns the footstep clip for an area
func (a *PlayerAssets) StepFor(area region.Area) string {
	if area == region.Cave {
		return a.StepCave
	}
	return a.StepOutside
}

// StepSoundSystem keeps one looping footstep sound alive while a player walks.
//
// The sound is dropped as soon as the area changes; on the following tick the
// new area is adopted and, if the player is still walking, the sound is
// spawned again with the new area's clip.
type StepSoundSystem struct {
	machine  *fsm.FSM
	lastArea region.Area
	sound    ecs.EntityID
	log      logrus.FieldLogger
}

type stepArgs struct {
	world  *ecs.World
	area   region.Area
	assets *PlayerAssets
}

// NewStepSoundSystem creates a new footstep sound system
func NewStepSoundSystem(log logrus.FieldLogger) *StepSoundSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &StepSoundSystem{log: log}
	s.machine = fsm.NewFSM(
		StepSilent,
		fsm.Events{
			{Name: eventStep, Src: []string{StepSilent}, Dst: StepStepping},
			{Name: eventHalt, Src: []string{StepStepping}, Dst: StepSilent},
		},
		fsm.Callbacks{
			"enter_" + StepStepping: func(e *fsm.Event) {
				s.spawn(e.Args[0].(stepArgs))
			},
			"leave_" + StepStepping: func(e *fsm.Event) {
				s.despawn(e.Args[0].(stepArgs))
			},
		},
	)
	return s
}

// Update runs one tick of the footstep state machine
func (s *StepSoundSystem) Update(w *ecs.World, area region.Area, assets *PlayerAssets) {
	args := stepArgs{world: w, area: area, assets: assets}

	// Sound entity removed behind our back (world reset)
	if s.machine.Is(StepStepping) && !w.Exists(s.sound) {
		s.sound = 0
		s.machine.SetState(StepSilent)
	}

	if s.lastArea != area && s.machine.Is(StepStepping) {
		s.fire(eventHalt, args)
		return
	}
	s.lastArea = area

	for _, id := range w.Players() {
		anim, ok := w.Animation[id]
		if !ok {
			continue
		}
		if anim.State() == animation.Walking {
			if s.machine.Is(StepStepping) {
				continue
			}
			s.fire(eventStep, args)
		} else if s.machine.Is(StepStepping) {
			s.fire(eventHalt, args)
		}
	}
}

// State returns the current machine state (StepSilent or StepStepping)
func (s *StepSoundSystem) State() string {
	return s.machine.Current()
}

// Sound returns the live footstep sound entity, 0 if none
func (s *StepSoundSystem) Sound() ecs.EntityID {
	return s.sound
}

func (s *StepSoundSystem) fire(event string, args stepArgs) {
	if err := s.machine.Event(event, args); err != nil {
		s.log.WithError(err).WithField("event", event).Warn("step sound transition failed")
	}
}

func (s *StepSoundSystem) spawn(args stepArgs) {
	clip := args.assets.StepFor(args.area)
	s.sound = args.world.SpawnSound(ecs.SoundEffect{
		Clip:   clip,
		Loop:   true,
		Volume: args.assets.Volume,
	}, StepSoundName)
	s.log.WithFields(logrus.Fields{
		"entity": s.sound,
		"area":   args.area,
		"clip":   clip,
	}).Debug("step sound started")
}

func (s *StepSoundSystem) despawn(args stepArgs) {
	if s.sound == 0 {
		return
	}
	args.world.DestroyEntity(s.sound)
	s.log.WithFields(logrus.Fields{
		"entity": s.sound,
		"area":   args.area,
	}).Debug("step sound stopped")
	s.sound = 0
}
