// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/state"
	"go-lane-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxDeltaTime = 0.1

type AppGame struct {
	stateMachine   *state.StateMachine
	renderer       *ui.Renderer
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.renderer.Size()
}

func main() {
	tuningPath := flag.String("tuning", "", "path to a JSON tuning file (defaults are used when empty)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	verbose := flag.Bool("verbose", false, "log every game event")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning := defs.DefaultTuning()
	if *tuningPath != "" {
		var err error
		tuning, err = defs.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	game := app.NewGame(tuning, *seed)
	if *verbose {
		game.EventDispatcher.SubscribeAll(event.NewLogger(log.Default()))
	}

	width, height := int(tuning.CanvasWidth), int(tuning.CanvasHeight)
	renderer := ui.NewRenderer(tuning.CellSize, width, height, ui.DefaultColors())
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game, renderer))

	a := &AppGame{
		stateMachine:   sm,
		renderer:       renderer,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
