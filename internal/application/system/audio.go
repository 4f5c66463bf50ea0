package system

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/ecs"
	"github.com/younwookim/stepanim/internal/infrastructure/sound"
)

// Mixer starts voices for clips
type Mixer interface {
	Play(clip string, loop bool, volume float64) (sound.Voice, error)
}

// AudioSystem keeps one mixer voice per sound effect entity
type AudioSystem struct {
	mixer  Mixer
	voices map[ecs.EntityID]sound.Voice
	failed map[ecs.EntityID]struct{}
	paused bool
	log    logrus.FieldLogger
}

// NewAudioSystem creates a new audio system playing through mixer
func NewAudioSystem(mixer Mixer, log logrus.FieldLogger) *AudioSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AudioSystem{
		mixer:  mixer,
		voices: make(map[ecs.EntityID]sound.Voice),
		failed: make(map[ecs.EntityID]struct{}),
		log:    log,
	}
}

// Update closes voices of destroyed entities and starts voices for new ones
func (a *AudioSystem) Update(w *ecs.World) {
	for id, v := range a.voices {
		if _, ok := w.Sound[id]; ok {
			continue
		}
		if err := v.Close(); err != nil {
			a.log.WithError(err).WithField("entity", id).Warn("failed to close voice")
		}
		delete(a.voices, id)
	}
	for id := range a.failed {
		if _, ok := w.Sound[id]; !ok {
			delete(a.failed, id)
		}
	}

	ids := make([]ecs.EntityID, 0, len(w.Sound))
	for id := range w.Sound {
		if _, ok := a.voices[id]; ok {
			continue
		}
		if _, ok := a.failed[id]; ok {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		fx := w.Sound[id]
		v, err := a.mixer.Play(fx.Clip, fx.Loop, fx.Volume)
		if err != nil {
			// Retried only if the entity is respawned
			a.failed[id] = struct{}{}
			a.log.WithError(err).WithFields(logrus.Fields{
				"entity": id,
				"clip":   fx.Clip,
			}).Warn("failed to start sound")
			continue
		}
		if a.paused {
			v.Pause()
		}
		a.voices[id] = v
	}
}

// SetPaused pauses or resumes every voice
func (a *AudioSystem) SetPaused(paused bool) {
	if a.paused == paused {
		return
	}
	a.paused = paused
	for _, v := range a.voices {
		if paused {
			v.Pause()
		} else {
			v.Resume()
		}
	}
}

// Paused reports whether voices are paused
func (a *AudioSystem) Paused() bool {
	return a.paused
}

// Active returns the number of open voices
func (a *AudioSystem) Active() int {
	return len(a.voices)
}

// Close stops every voice
func (a *AudioSystem) Close() {
	for id, v := range a.voices {
		if err := v.Close(); err != nil {
			a.log.WithError(err).WithField("entity", id).Warn("failed to close voice")
		}
		delete(a.voices, id)
	}
}
