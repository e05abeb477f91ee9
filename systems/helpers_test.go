package systems

import (
	"testing"

	"github.com/automoto/mysticwoods/components"
	cfg "github.com/automoto/mysticwoods/config"
	"github.com/automoto/mysticwoods/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickDelta = 1.0 / 60.0

type harness struct {
	ecs   *ecs.ECS
	cfg   *cfg.Config
	state *donburi.Entry
	space *resolv.Space
}

func newHarness(t *testing.T, mutate func(*cfg.Config)) *harness {
	t.Helper()
	c := cfg.Default()
	if mutate != nil {
		mutate(c)
	}
	w := donburi.NewWorld()
	e := ecs.NewECS(w)
	AddSystems(e)
	state := factory.CreateWorldState(w, c)
	return &harness{ecs: e, cfg: c, state: state, space: components.Space.Get(state)}
}

func (h *harness) player(x, y float64) *donburi.Entry {
	return factory.CreatePlayer(h.ecs.World, h.space, h.cfg.Player, x, y)
}

func (h *harness) enemy(x, y float64) *donburi.Entry {
	return factory.CreateEnemy(h.ecs.World, h.space, h.cfg.Enemy, x, y)
}

func (h *harness) tick() {
	AdvanceClock(h.ecs.World, tickDelta)
	h.ecs.Update()
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}

func (h *harness) reports() int {
	return len(components.CombatLog.Get(h.state).Reports)
}

func hold(e *donburi.Entry, actions ...cfg.ActionID) {
	var frame [cfg.ActionCount]bool
	for _, a := range actions {
		frame[a] = true
	}
	components.Input.Get(e).Set(frame)
}

func health(e *donburi.Entry) float64 {
	return components.Stats.Get(e).Health
}

func moveTo(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.Update()
}
