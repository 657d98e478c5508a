// cmd/tui/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/tui"
)

func main() {
	tuningPath := flag.String("tuning", "", "path to a JSON tuning file (defaults are used when empty)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	verbose := flag.Bool("verbose", false, "log every game event")
	logPath := flag.String("log", "", "write logs to this file; the terminal is owned by the game")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	tuning := defs.DefaultTuning()
	if *tuningPath != "" {
		var err error
		tuning, err = defs.LoadTuning(*tuningPath)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
	}

	game := app.NewGame(tuning, *seed)
	if *verbose {
		game.EventDispatcher.SubscribeAll(event.NewLogger(nil))
	}

	layout := tui.Layout{
		CellSize: tuning.CellSize,
		CellCols: config.TermCellCols,
		CellRows: config.TermCellRows,
	}
	runner, err := tui.New(game, layout, tuning.CanvasWidth, tuning.CanvasHeight)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer runner.Close()

	runner.Run(config.TermFrameMillis * time.Millisecond)
}
