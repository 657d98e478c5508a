package system

import (
	"math"
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"
)

type testEnv struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	spawner    *SpawnSystem
	defenders  *DefenderSystem
	enemies    *EnemySystem
	projectile *ProjectileSystem
	resources  *ResourceSystem
	economy    *EconomySystem
	events     []event.Event
}

func newTestEnv(t *testing.T, tuning defs.Tuning) *testEnv {
	t.Helper()
	d := event.NewDispatcher()
	w := entity.NewWorld(tuning)
	spawner := NewSpawnSystem(d, utils.NewPRNGService(1))
	env := &testEnv{
		world:      w,
		dispatcher: d,
		spawner:    spawner,
		defenders:  NewDefenderSystem(d),
		enemies:    NewEnemySystem(d, spawner),
		projectile: NewProjectileSystem(),
		resources:  NewResourceSystem(d),
		economy:    NewEconomySystem(w, d),
	}
	NewStatsSystem(w, d)
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { env.events = append(env.events, e) }))
	return env
}

func (env *testEnv) count(typ event.EventType) int {
	n := 0
	for _, e := range env.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func (env *testEnv) addDefender(x, y float64) *component.Defender {
	t := env.world.Tuning
	d := component.NewDefender(x, y, t.CellSize, t.DefenderHealth)
	env.world.Defenders = append(env.world.Defenders, d)
	return d
}

func (env *testEnv) addEnemy(x, y, speed, health float64) *component.Enemy {
	e := component.NewEnemy(x, y, env.world.Tuning.CellSize, speed, health)
	env.world.Enemies = append(env.world.Enemies, e)
	return e
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
