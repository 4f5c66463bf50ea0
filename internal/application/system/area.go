package system

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/ecs"
)

// AreaSystem derives the current area from the player position
type AreaSystem struct {
	caveStartX float64
	log        logrus.FieldLogger
}

// NewAreaSystem creates an area system; X at or past caveStartX is the cave
func NewAreaSystem(caveStartX float64, log logrus.FieldLogger) *AreaSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AreaSystem{caveStartX: caveStartX, log: log}
}

// Update returns the area the player is in, or current if there is no player
func (s *AreaSystem) Update(w *ecs.World, current region.Area) region.Area {
	if w.PlayerID == 0 {
		return current
	}
	pos, ok := w.Position[w.PlayerID]
	if !ok {
		return current
	}

	next := region.Outside
	if pos.X >= s.caveStartX {
		next = region.Cave
	}
	if next != current {
		s.log.WithFields(logrus.Fields{
			"from": current,
			"to":   next,
			"x":    pos.X,
		}).Info("area changed")
	}
	return next
}
