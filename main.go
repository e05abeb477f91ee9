package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/config"
	"github.com/automoto/mysticwoods/input"
	"github.com/automoto/mysticwoods/sim"
	"github.com/automoto/mysticwoods/systems"
	"github.com/automoto/mysticwoods/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	screenWidth  = 640
	screenHeight = 360

	hitFlashSeconds = 0.25
)

type Game struct {
	sim      *sim.Simulation
	bindings input.Bindings
	lastErr  string

	// Hit flash per damaged actor, fading from 1 to 0.
	flashes map[donburi.Entity]*gween.Tween
	flash   map[donburi.Entity]float32
}

func NewGame(c *config.Config) (*Game, error) {
	s, err := sim.New(c)
	if err != nil {
		return nil, err
	}
	s.SpawnPlayer(120, 160)
	s.SpawnEnemy(360, 160)
	s.SpawnEnemy(420, 240)

	return &Game{
		sim:      s,
		bindings: input.DefaultBindings(),
		flashes:  make(map[donburi.Entity]*gween.Tween),
		flash:    make(map[donburi.Entity]float32),
	}, nil
}

func (g *Game) Update() error {
	actor, err := systems.ControlledActor(g.sim.World())
	switch {
	case err != nil:
		// Logged once per distinct failure; the tick still runs.
		if err.Error() != g.lastErr {
			log.Printf("[input] %v", err)
		}
		g.lastErr = err.Error()
	default:
		g.lastErr = ""
		if err := g.sim.SetInput(actor.Entity(), input.Poll(g.bindings)); err != nil {
			log.Printf("[input] %v", err)
		}
	}

	dt := g.sim.TickDelta()
	g.sim.Step(dt)
	g.updateFlashes(float32(dt))
	return nil
}

func (g *Game) updateFlashes(dt float32) {
	for e, tw := range g.flashes {
		v, finished := tw.Update(dt)
		g.flash[e] = v
		if finished {
			delete(g.flashes, e)
			delete(g.flash, e)
		}
	}
	for _, r := range g.sim.Reports() {
		g.flashes[r.Target] = gween.New(1, 0, hitFlashSeconds, ease.OutQuad)
		g.flash[r.Target] = 1
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 32, 24, 255})

	for _, obj := range g.sim.Space().Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvHitbox) {
			c = color.RGBA{255, 255, 0, 255} // Yellow
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		if entry, ok := obj.Data.(*donburi.Entry); ok {
			if a := g.flash[entry.Entity()]; a > 0 {
				v := uint8(a * 255) // premultiplied white
				vector.FillRect(screen, x, y, w, h, color.RGBA{v, v, v, v}, false)
			}
		}
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	line := 0
	components.Stats.Each(g.sim.World(), func(e *donburi.Entry) {
		stats := components.Stats.Get(e)
		name := components.Actor.Get(e).Name
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %v: %.0f/%.0f", name, e.Entity(), stats.Health, stats.MaxHealth), 4, 4+line*14)
		line++
	})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("defeated: %d", g.sim.Deaths()), 4, screenHeight-18)
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML file overlaid on the default settings")
	flag.Parse()

	c := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		c = loaded
	}

	game, err := NewGame(c)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetTPS(c.Sim.TickRate)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("Mystic Woods")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
