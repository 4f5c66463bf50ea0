// Package game runs the active scene inside ebiten's loop.
//
// The game starts on the playing scene; a scene hands over to another by
// returning it from Update, and the outgoing scene gets OnExit so it can
// stop its footstep voices and flush any recording.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/application/scene"
)

// Game implements ebiten.Game on top of one active scene.
type Game struct {
	active  scene.Scene
	screenW int
	screenH int
	step    float64 // seconds passed to Scene.Update
	log     logrus.FieldLogger
}

// New makes initial the active scene and enters it.
func New(initial scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		active:  initial,
		screenW: screenW,
		screenH: screenH,
		step:    1.0 / 60.0,
		log:     logrus.StandardLogger(),
	}
	g.active.OnEnter()
	return g
}

// Update advances the active scene one tick. A scene error ends the game.
func (g *Game) Update() error {
	next, err := g.active.Update(g.step)
	if err != nil {
		return err
	}
	if next != nil {
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.log.WithFields(logrus.Fields{
		"from": fmt.Sprintf("%T", g.active),
		"to":   fmt.Sprintf("%T", next),
	}).Debug("scene transition")
	g.active.OnExit()
	g.active = next
	g.active.OnEnter()
}

// Draw renders the active scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.active.Draw(screen)
}

// Layout keeps the configured logical resolution; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the tick length in seconds, normally 1/framerate from game.yaml.
func (g *Game) SetDT(dt float64) {
	g.step = dt
}

// SetLogger replaces the logger used for transitions
func (g *Game) SetLogger(log logrus.FieldLogger) {
	g.log = log
}

// Close exits the active scene. Call once after ebiten.RunGame returns.
func (g *Game) Close() {
	g.active.OnExit()
}
