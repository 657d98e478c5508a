package entity

import (
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld(defs.DefaultTuning())
	if len(w.Cells) != 45 {
		t.Errorf("grid has %d cells, want 45 (9 columns x 5 lanes)", len(w.Cells))
	}
	for _, c := range w.Cells {
		if c.Y < 100 {
			t.Fatalf("cell %+v inside the control bar", c)
		}
	}
	if w.Economy.Resources != 300 || w.Economy.DefenderCost != 100 || w.Economy.Score != 0 {
		t.Errorf("unexpected initial economy %+v", w.Economy)
	}
	if w.EnemiesInterval != 600 {
		t.Errorf("EnemiesInterval = %d, want 600", w.EnemiesInterval)
	}
}

func TestClearKeepsEconomy(t *testing.T) {
	w := NewWorld(defs.DefaultTuning())
	w.Economy.Score = 120
	w.Defenders = append(w.Defenders, component.NewDefender(0, 100, 100, 100))
	w.Enemies = append(w.Enemies, component.NewEnemy(500, 100, 100, 0.5, 100))
	w.Clear()

	if len(w.Cells)+len(w.Defenders)+len(w.Enemies)+len(w.Projectiles)+len(w.Resources) != 0 {
		t.Error("Clear left entities behind")
	}
	if w.Economy.Score != 120 {
		t.Errorf("Clear touched the score: %v", w.Economy.Score)
	}
}

func TestCompact(t *testing.T) {
	a, b, c, d := 1, 2, 3, 4
	items := []*int{&a, &b, &c, &d}
	backing := items

	items = Compact(items, func(v *int) bool { return *v%2 == 0 })
	if len(items) != 2 || *items[0] != 2 || *items[1] != 4 {
		t.Fatalf("Compact kept %v", items)
	}
	if backing[2] != nil || backing[3] != nil {
		t.Error("Compact should zero the dropped tail")
	}
}

func TestDefenderAtAndLane(t *testing.T) {
	w := NewWorld(defs.DefaultTuning())
	w.Defenders = append(w.Defenders, component.NewDefender(200, 300, 100, 100))
	if w.DefenderAt(200, 300) == nil {
		t.Error("DefenderAt missed an exact cell")
	}
	if w.DefenderAt(200, 200) != nil {
		t.Error("DefenderAt matched the wrong cell")
	}

	w.Enemies = append(w.Enemies, component.NewEnemy(850.3, 300, 100, 0.5, 100))
	if !w.EnemyInLane(300) || w.EnemyInLane(200) {
		t.Error("EnemyInLane mismatch")
	}
}

func TestEntitiesOrder(t *testing.T) {
	w := NewWorld(defs.DefaultTuning())
	w.Defenders = append(w.Defenders, component.NewDefender(0, 100, 100, 100))
	w.Enemies = append(w.Enemies, component.NewEnemy(900, 100, 100, 0.5, 100))
	w.Projectiles = append(w.Projectiles, &component.Projectile{X: 70, Y: 170, Size: 10})
	w.Resources = append(w.Resources, &component.ResourceBlock{X: 300, Y: 300, Size: 100, Value: 40})

	all := w.Entities()
	want := []component.Kind{component.KindDefender, component.KindEnemy, component.KindProjectile, component.KindResource}
	tail := all[len(w.Cells):]
	if len(tail) != len(want) {
		t.Fatalf("got %d non-cell entities, want %d", len(tail), len(want))
	}
	for i, k := range want {
		if tail[i].Kind() != k {
			t.Errorf("entity %d kind = %v, want %v", i, tail[i].Kind(), k)
		}
	}
}
