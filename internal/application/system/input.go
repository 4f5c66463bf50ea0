package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/stepanim/internal/ecs"
)

// InputSystem handles player input
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// GetInput reads the current input state (WASD or arrow keys)
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}

// Direction returns the normalized movement direction.
// Opposite keys cancel out; up is -Y.
func (in InputState) Direction() ecs.Vec2 {
	var v ecs.Vec2
	if in.Left {
		v.X--
	}
	if in.Right {
		v.X++
	}
	if in.Up {
		v.Y--
	}
	if in.Down {
		v.Y++
	}
	return v.NormalizeOrZero()
}

// Intents converts input into a move intent for every player
func Intents(w *ecs.World, in InputState) []Intent {
	dir := in.Direction()
	players := w.Players()
	intents := make([]Intent, 0, len(players))
	for _, id := range players {
		intents = append(intents, MoveIntent{EntityID: id, Direction: dir})
	}
	return intents
}
