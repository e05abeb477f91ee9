package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/mysticwoods/config"
	"github.com/automoto/mysticwoods/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML file overlaid on the default settings")
	ticks := flag.Uint64("ticks", 600, "Number of ticks to simulate (0 = until interrupted, realtime only)")
	realtime := flag.Bool("realtime", false, "Step at the configured tick rate instead of as fast as possible")
	gap := flag.Float64("gap", 150, "Starting distance between player and enemy")
	flag.Parse()

	c := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		c = loaded
	}
	if *ticks == 0 && !*realtime {
		log.Fatalf("-ticks 0 requires -realtime")
	}

	s, err := sim.New(c)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}
	duel := sim.NewDuel(s, *gap)

	hits := 0
	script := func(s *sim.Simulation, tick uint64) {
		// Reports from the previous tick are still visible here.
		for _, r := range s.Reports() {
			hits++
			log.Printf("tick %d: %v hit %v for %.0f (%v)", r.Tick, r.Attacker, r.Target, r.Damage, r.Outcome)
		}
		duel.Script(s, tick)
	}
	loop := sim.NewGameLoop(s, script)

	if *realtime {
		loop.SetLimit(*ticks)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Shutting down simulation...")
			loop.Stop()
		}()
		loop.Run()
	} else {
		loop.FastForward(int(*ticks))
	}

	// The final tick's reports were never seen by the script.
	for _, r := range s.Reports() {
		hits++
		log.Printf("tick %d: %v hit %v for %.0f (%v)", r.Tick, r.Attacker, r.Target, r.Damage, r.Outcome)
	}

	enemy, err := s.Stats(duel.Enemy)
	if err != nil {
		log.Fatalf("Enemy lookup failed: %v", err)
	}
	log.Printf("Simulated %d ticks (%.2fs): %d hits, %d defeats, enemy at %.0f/%.0f",
		s.Tick(), s.Elapsed(), hits, s.Deaths(), enemy.Health, enemy.MaxHealth)
}
