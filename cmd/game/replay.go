package main

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/application/replay"
	"github.com/younwookim/stepanim/internal/infrastructure/config"
)

// runReplay loads a recording and runs it through the schedule headless
func runReplay(cfg *config.GameConfig, path string, log logrus.FieldLogger) (replay.Summary, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Summary{}, err
	}
	log.WithFields(logrus.Fields{
		"file":   path,
		"frames": len(data.Frames),
		"area":   data.StartArea,
	}).Info("replaying")

	trace, err := replay.Simulate(cfg, *data, log)
	if err != nil {
		return replay.Summary{}, err
	}
	return trace.Summarize(), nil
}

func summaryFields(s replay.Summary) logrus.Fields {
	return logrus.Fields{
		"frames":      s.Frames,
		"walking":     s.WalkingFrames,
		"soundStarts": s.SoundStarts,
		"areaChanges": s.AreaChanges,
		"maxSounds":   s.MaxSounds,
	}
}
