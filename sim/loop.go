package sim

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Script feeds input before each tick. tick is the number of the tick about
// to run, starting at 1.
type Script func(s *Simulation, tick uint64)

// GameLoop steps a Simulation at a fixed wall-clock rate.
type GameLoop struct {
	sim      *Simulation
	script   Script
	tickRate int
	limit    uint64
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop at the configured tick rate. script may be nil.
func NewGameLoop(sim *Simulation, script Script) *GameLoop {
	return &GameLoop{
		sim:      sim,
		script:   script,
		tickRate: sim.Config().Sim.TickRate,
		stopChan: make(chan struct{}),
	}
}

// SetLimit makes Run return once the simulation has completed n ticks.
// Zero means run until Stop.
func (g *GameLoop) SetLimit(n uint64) {
	g.limit = n
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}

// Run blocks until Stop is called or the tick limit is reached.
func (g *GameLoop) Run() {
	g.running.Store(true)
	defer g.running.Store(false)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[sim] game loop started at %d ticks/second", g.tickRate)

	for {
		if g.done() {
			log.Printf("[sim] game loop reached %d ticks", g.limit)
			return
		}
		select {
		case <-g.stopChan:
			log.Println("[sim] game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// FastForward runs n ticks back to back without waiting on the clock.
func (g *GameLoop) FastForward(n int) {
	for i := 0; i < n; i++ {
		g.tick()
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) done() bool {
	return g.limit > 0 && g.sim.Tick() >= g.limit
}

func (g *GameLoop) tick() {
	if g.script != nil {
		g.script(g.sim, g.sim.Tick()+1)
	}
	g.sim.Step(g.sim.TickDelta())
}
