package tui

import (
	"strings"
	"testing"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

var testLayout = Layout{CellSize: 100, CellCols: config.TermCellCols, CellRows: config.TermCellRows}

func newTestRunner(t *testing.T) (*Runner, *app.Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)

	tuning := defs.DefaultTuning()
	w, h := testLayout.Size(tuning.CanvasWidth, tuning.CanvasHeight)
	screen.SetSize(w, h)

	game := app.NewGame(tuning, 7)
	return NewRunner(screen, game, testLayout, tuning.CanvasWidth, tuning.CanvasHeight), game, screen
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLayoutSize(t *testing.T) {
	w, h := testLayout.Size(900, 600)
	if w != 72 || h != 18 {
		t.Errorf("Size(900, 600) = %d x %d, want 72 x 18", w, h)
	}
}

func TestLayoutToField(t *testing.T) {
	tests := []struct {
		col, row int
		cellX    float64
		cellY    float64
	}{
		{0, 0, 0, 0},
		{7, 2, 0, 0},
		{8, 3, 100, 100},
		{71, 17, 800, 500},
	}
	for _, tt := range tests {
		x, y := testLayout.ToField(tt.col, tt.row)
		cell := geom.Rect{X: tt.cellX, Y: tt.cellY, W: 100, H: 100}
		if !geom.Collision(geom.NewPointer(x, y), cell) {
			t.Errorf("ToField(%d, %d) = (%v, %v), not inside cell at (%v, %v)", tt.col, tt.row, x, y, tt.cellX, tt.cellY)
		}
	}
}

func TestLayoutToScreen(t *testing.T) {
	c0, r0, c1, r1 := testLayout.ToScreen(geom.Rect{X: 100, Y: 100, W: 100, H: 100})
	if c0 != 8 || r0 != 3 || c1 != 16 || r1 != 6 {
		t.Errorf("cell span = [%d,%d)x[%d,%d), want [8,16)x[3,6)", c0, c1, r0, r1)
	}

	// A projectile is narrower than one character but must stay visible.
	c0, r0, c1, r1 = testLayout.ToScreen(geom.Rect{X: 170, Y: 120, W: 10, H: 10})
	if c1-c0 < 1 || r1-r0 < 1 {
		t.Errorf("projectile span is empty: [%d,%d)x[%d,%d)", c0, c1, r0, r1)
	}
}

func TestRunnerStartAndQuit(t *testing.T) {
	r, game, _ := newTestRunner(t)

	if !r.HandleEvent(keyRune('s')) {
		t.Fatal("s should not quit")
	}
	if game.Phase() != app.PhaseRunning {
		t.Fatalf("phase after s = %v, want Running", game.Phase())
	}
	if r.HandleEvent(keyRune('q')) {
		t.Error("q should quit")
	}
	if r.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

func TestRunnerPauseAndSpeed(t *testing.T) {
	r, game, _ := newTestRunner(t)
	r.HandleEvent(keyRune('p'))
	if game.Paused() {
		t.Error("pause toggled before the game started")
	}

	game.Start()
	r.HandleEvent(keyRune('p'))
	if !game.Paused() {
		t.Fatal("p did not pause")
	}
	r.Frame()
	if game.World.Frame != 0 {
		t.Errorf("frame advanced while paused: %d", game.World.Frame)
	}
	r.HandleEvent(keyRune('p'))
	if game.Paused() {
		t.Fatal("p did not resume")
	}

	for _, want := range []int{2, 4, 1} {
		r.HandleEvent(keyRune('+'))
		if r.Speed() != want {
			t.Errorf("Speed() = %d, want %d", r.Speed(), want)
		}
	}

	r.HandleEvent(keyRune('+'))
	r.Frame()
	if game.World.Frame != 2 {
		t.Errorf("frame after one x2 frame = %d, want 2", game.World.Frame)
	}
}

func TestRunnerClickPlacesDefender(t *testing.T) {
	r, game, _ := newTestRunner(t)
	game.Start()

	r.HandleEvent(tcell.NewEventMouse(11, 4, tcell.Button1, tcell.ModNone))
	if len(game.World.Defenders) != 1 {
		t.Fatalf("defenders = %d, want 1", len(game.World.Defenders))
	}
	d := game.World.Defenders[0]
	if d.X != 100 || d.Y != 100 {
		t.Errorf("defender at (%v, %v), want (100, 100)", d.X, d.Y)
	}

	// Dragging with the button held is not a second click.
	r.HandleEvent(tcell.NewEventMouse(20, 4, tcell.Button1, tcell.ModNone))
	if len(game.World.Defenders) != 1 {
		t.Errorf("drag placed another defender: %d", len(game.World.Defenders))
	}

	r.HandleEvent(tcell.NewEventMouse(20, 4, tcell.ButtonNone, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(20, 4, tcell.Button1, tcell.ModNone))
	if len(game.World.Defenders) != 2 {
		t.Errorf("second click did not place: %d defenders", len(game.World.Defenders))
	}

	// The control bar row never takes a defender.
	r.HandleEvent(tcell.NewEventMouse(30, 1, tcell.ButtonNone, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(30, 1, tcell.Button1, tcell.ModNone))
	if len(game.World.Defenders) != 2 {
		t.Errorf("control bar click placed a defender")
	}
}

func TestRunnerMouseOutsideClearsPointer(t *testing.T) {
	r, game, _ := newTestRunner(t)
	game.Start()

	r.HandleEvent(tcell.NewEventMouse(11, 4, tcell.ButtonNone, tcell.ModNone))
	if game.World.Pointer.Absent() {
		t.Fatal("pointer should be on the field")
	}
	r.HandleEvent(tcell.NewEventMouse(500, 4, tcell.ButtonNone, tcell.ModNone))
	if !game.World.Pointer.Absent() {
		t.Error("pointer outside the field should be absent")
	}
}

func TestViewDrawsField(t *testing.T) {
	r, game, screen := newTestRunner(t)
	game.Start()
	game.PlaceDefenderAt(150, 150)

	r.view.Draw(screen, game.Snapshot())

	mainc, _, style, _ := screen.GetContent(1, 0)
	if mainc != 'R' {
		t.Errorf("HUD starts with %q, want 'R'", mainc)
	}
	if _, bg, _ := style.Decompose(); bg != tcell.ColorBlue {
		t.Errorf("control bar background = %v, want blue", bg)
	}

	_, _, style, _ = screen.GetContent(9, 5)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorBlue {
		t.Errorf("defender background = %v, want blue", bg)
	}

	// Health label is centred on the middle row of the defender.
	label := make([]rune, 3)
	for i := range label {
		label[i], _, _, _ = screen.GetContent(10+i, 4)
	}
	if string(label) != "100" {
		t.Errorf("defender label = %q, want \"100\"", string(label))
	}
}

func TestViewGameOver(t *testing.T) {
	r, game, screen := newTestRunner(t)
	game.Start()
	game.World.GameOver = true
	game.Tick()
	if game.Phase() != app.PhaseGameOver {
		t.Fatalf("phase = %v, want GameOver", game.Phase())
	}

	r.view.Draw(screen, game.Snapshot())
	w, h := screen.Size()
	found := false
	for y := 0; y < h && !found; y++ {
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			row[x], _, _, _ = screen.GetContent(x, y)
		}
		found = strings.Contains(string(row), "GAME OVER")
	}
	if !found {
		t.Error("GAME OVER banner not drawn")
	}

	r.HandleEvent(keyRune('r'))
	if game.Phase() != app.PhaseRunning {
		t.Errorf("phase after r = %v, want Running", game.Phase())
	}
}
