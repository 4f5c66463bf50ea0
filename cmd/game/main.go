package main

import (
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/stepanim/internal/application/game"
	"github.com/younwookim/stepanim/internal/application/scene/playing"
	"github.com/younwookim/stepanim/internal/application/system"
	"github.com/younwookim/stepanim/internal/domain/region"
	"github.com/younwookim/stepanim/internal/infrastructure/config"
	"github.com/younwookim/stepanim/internal/infrastructure/render"
	"github.com/younwookim/stepanim/internal/infrastructure/sound"
)

type options struct {
	ConfigDir string `short:"c" long:"config" description:"Directory holding game.yaml (embedded configs when empty)"`
	AssetsDir string `short:"a" long:"assets" default:"assets" description:"Directory holding images and audio"`
	Record    string `short:"r" long:"record" description:"Record input to file (e.g. --record replay.json)"`
	Replay    string `short:"p" long:"replay" description:"Replay a recording headless and print a summary"`
	Verbose   bool   `short:"v" long:"verbose" description:"Log system transitions"`
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	return opts
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// newMixer opens the audio device and decodes the step clips.
// Without them the game still runs, silently.
func newMixer(cfg *config.GameConfig, assets fs.FS, log logrus.FieldLogger) system.Mixer {
	mixer := sound.NewMixer(cfg.Audio.SampleRate)
	clips := []string{cfg.StepClip(region.Outside), cfg.StepClip(region.Cave)}
	if err := mixer.LoadAll(assets, clips...); err != nil {
		log.WithError(err).Warn("audio disabled")
		return sound.NewNullMixer()
	}
	return mixer
}

func loadAtlas(cfg *config.GameConfig, assets fs.FS, log logrus.FieldLogger) *render.Atlas {
	layout := render.LayoutFromConfig(cfg.Player.Atlas)
	if cfg.Player.Atlas.Image == "" {
		return render.PlaceholderAtlas(layout)
	}
	atlas, err := render.LoadAtlas(assets, cfg.Player.Atlas.Image, layout)
	if err != nil {
		log.WithError(err).Warn("using placeholder sprites")
		return render.PlaceholderAtlas(layout)
	}
	return atlas
}

func main() {
	opts := parseCmd()
	log := newLogger(opts.Verbose)

	cfg, err := loadConfig(opts.ConfigDir)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	if opts.Replay != "" {
		summary, err := runReplay(cfg, opts.Replay, log)
		if err != nil {
			log.WithError(err).Fatal("replay failed")
		}
		log.WithFields(summaryFields(summary)).Info("replay finished")
		return
	}

	assets := os.DirFS(opts.AssetsDir)
	scene, err := playing.New(cfg, playing.Options{
		Mixer:      newMixer(cfg, assets, log),
		Atlas:      loadAtlas(cfg, assets, log),
		RecordPath: opts.Record,
		Log:        log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create scene")
	}

	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetLogger(log)
	g.SetDT(cfg.FrameDuration().Seconds())

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Step Animation")
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.WithError(err).Fatal("game exited with error")
	}
}
