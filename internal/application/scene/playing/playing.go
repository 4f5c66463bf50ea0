// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/application/replay"
	"github.com/younwookim/stepanim/internal/application/scene"
	"github.com/younwookim/stepanim/internal/application/state"
	"github.com/younwookim/stepanim/internal/application/system"
	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/ecs"
	"github.com/younwookim/stepanim/internal/infrastructure/config"
	"github.com/younwookim/stepanim/internal/infrastructure/render"
)

// Colors for rendering
var (
	colorOutside = color.RGBA{70, 120, 70, 255}
	colorCave    = color.RGBA{40, 36, 52, 255}
	colorEdge    = color.RGBA{20, 18, 28, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// Options configures a Playing scene
type Options struct {
	Mixer      system.Mixer
	Atlas      *render.Atlas // nil draws placeholder tiles
	RecordPath string        // empty disables recording
	Log        logrus.FieldLogger
}

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	world       *ecs.World
	schedule    *system.Schedule
	inputSystem *system.InputSystem
	resources   *system.Resources
	area        region.Area
	state       state.GameState
	atlas       *render.Atlas
	screenW     int
	screenH     int
	log         logrus.FieldLogger

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene with the player spawned and all systems
// wired from cfg.
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	w := ecs.NewWorld()
	if _, err := system.SpawnPlayer(w, cfg); err != nil {
		return nil, err
	}

	p := &Playing{
		config:         cfg,
		world:          w,
		schedule:       system.NewSchedule(cfg, opts.Mixer, log),
		inputSystem:    system.NewInputSystem(),
		area:           cfg.StartArea(),
		state:          state.StatePlaying,
		atlas:          opts.Atlas,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		log:            log,
		recordFilename: opts.RecordPath,
	}
	p.resources = &system.Resources{
		Delta:  cfg.FrameDuration(),
		Area:   &p.area,
		Assets: system.AssetsFromConfig(cfg),
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(p.area.String())
		log.WithField("file", opts.RecordPath).Info("recording enabled")
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene).
// Frames advance by the configured fixed step regardless of dt.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.togglePause()
	}
	if p.state == state.StatePaused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.step(p.inputSystem.GetInput())

	return nil, nil // nil = stay on this scene
}

// step runs one frame of the schedule with the given input
func (p *Playing) step(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.resources.Input = input
	p.schedule.Run(p.world, p.resources)
}

func (p *Playing) togglePause() {
	if p.state == state.StatePlaying {
		p.state = state.StatePaused
	} else {
		p.state = state.StatePlaying
	}
	p.schedule.Audio.SetPaused(p.state == state.StatePaused)
	p.log.WithField("state", p.state).Debug("game state changed")
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{
		"file":   filename,
		"frames": p.recorder.FrameCount(),
	}).Info("recording saved")
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.drawBackground(screen)

	if p.atlas == nil {
		p.atlas = render.PlaceholderAtlas(render.LayoutFromConfig(p.config.Player.Atlas))
	}
	for _, id := range p.world.Players() {
		pos := p.world.Position[id]
		render.DrawSprite(screen, p.atlas, p.world.Sprite[id], pos.X, pos.Y)
	}

	p.drawUI(screen)
	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawBackground(screen *ebiten.Image) {
	screen.Fill(colorOutside)

	caveX := p.config.Areas.CaveStartX
	if caveX < float64(p.screenW) {
		ebitenutil.DrawRect(screen, caveX, 0, float64(p.screenW)-caveX, float64(p.screenH), colorCave)
		ebitenutil.DrawRect(screen, caveX, 0, 2, float64(p.screenH), colorEdge)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	id := p.world.PlayerID
	anim := p.world.Animation[id]
	if anim == nil {
		return
	}

	debugText := fmt.Sprintf("WASD/Arrows: Move | ESC: Pause\n%s frame %d | %s | step: %s",
		anim.State(), anim.Frame(), p.area, p.schedule.StepSound.State())
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit stops all voices and flushes the recording
func (p *Playing) OnExit() {
	p.schedule.Audio.Close()
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// Area returns the area the player is in
func (p *Playing) Area() region.Area {
	return p.area
}

// State returns whether the scene is playing or paused
func (p *Playing) State() state.GameState {
	return p.state
}
