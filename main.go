// termsweep is a terminal Minesweeper.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"termsweep/board"
	"termsweep/config"
	"termsweep/engine"
	"termsweep/render"
	"termsweep/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPreset     = flag.String("preset", "", "Difficulty preset (beginner, intermediate or expert)")
	flagSeed       = flag.Uint64("seed", 0, "Mine layout seed (0 seeds from the clock)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagDebug      = flag.Bool("debug", false, "Write debug messages to the log file")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var log = engine.Log

var app *tview.Application
var rootPage *tview.Pages
var field *ui.MinefieldUI
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termsweep %s\n", Version)
		return
	}
	os.Exit(run())
}

// run plays until the UI exits and returns the process exit code.
func run() int {
	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logFile, err := setupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		log.SetOutput(os.Stderr)
		logFile.Close()
	}()

	preset := cfg.Preset()
	if *flagPreset != "" {
		p, ok := board.PresetByName(*flagPreset)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown preset %q\n", *flagPreset)
			return 2
		}
		preset = p
	}

	quickStart := *flagQuickStart || *flagPreset != "" || *flagSeed != 0

	app = tview.NewApplication().EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ✹ termsweep ")

	gameHint := tview.NewTextView()
	gameHint.SetBorder(false)
	field = ui.NewMinefield(app, cfg, gameHint)
	gameFrame := ui.CreateGameLayout(field, gameHint)

	var finished *engine.Game
	field.OnGameOver(func(g *engine.Game) {
		finished = g
		app.Stop()
	})

	field.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if ui.IsQuit(event) {
			log.Info("game abandoned")
			rootPage.SwitchToPage("setup")
			return nil
		}
		field.Apply(ui.KeyEvent(event))
		return nil
	})

	setupUI := ui.NewGameSetup(preset,
		func(gameCfg engine.GameConfig) {
			rememberPreset(gameCfg.Preset)
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
	)

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)

	if quickStart {
		startGame(engine.GameConfig{Preset: preset, Seed: *flagSeed})
	}

	done := make(chan struct{})
	go field.RunClock(done)

	err = app.SetRoot(rootPage, true).Run()
	close(done)
	if err != nil {
		log.WithError(err).Error("terminal UI failed")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if finished != nil {
		if report, ok := render.Report(finished, render.DefaultGlyphs); ok {
			fmt.Print(report)
		}
	}
	return 0
}

// startGame resets the minefield and shows it.
func startGame(gameCfg engine.GameConfig) {
	log.WithFields(logrus.Fields{
		"preset": gameCfg.Preset.Name,
		"seed":   gameCfg.Seed,
	}).Info("new game")
	field.NewGame(gameCfg)
	rootPage.SwitchToPage("gameview")
	app.SetFocus(field.Box)
}

// rememberPreset stores the chosen preset as the next default.
func rememberPreset(p board.Preset) {
	if cfg.Game.Preset == p.Name {
		return
	}
	cfg.Game.Preset = p.Name
	if err := cfg.Save(); err != nil {
		log.WithError(err).Warn("could not save config")
	}
}

// setupLogging sends log output to a file, since the terminal belongs to the UI.
func setupLogging() (*os.File, error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if *flagDebug {
		log.SetLevel(logrus.DebugLevel)
	}
	return f, nil
}
