package sim

import (
	"log"

	"github.com/automoto/mysticwoods/config"
	"github.com/yohamta/donburi"
)

// Duel is a scripted encounter: the player walks right toward an idle enemy
// and swings whenever it is in reach.
type Duel struct {
	Player donburi.Entity
	Enemy  donburi.Entity

	// Approach is the gap at which the player stops walking and coasts in.
	Approach float64
	// Reach is the largest gap at which a swing still connects.
	Reach float64
}

// NewDuel spawns both actors on the same row, gap pixels apart.
func NewDuel(s *Simulation, gap float64) *Duel {
	const x, y = 100, 100
	return &Duel{
		Player:   s.SpawnPlayer(x, y),
		Enemy:    s.SpawnEnemy(x+gap, y),
		Approach: 40,
		Reach:    26,
	}
}

// Script writes the player's input for the coming tick. Attack is pressed on
// odd ticks and released on even ones so each idle phase sees a fresh press.
func (d *Duel) Script(s *Simulation, tick uint64) {
	px, _, err := s.Position(d.Player)
	if err != nil {
		log.Printf("[sim] duel: %v", err)
		return
	}
	ex, _, err := s.Position(d.Enemy)
	if err != nil {
		log.Printf("[sim] duel: %v", err)
		return
	}

	var frame [config.ActionCount]bool
	gap := ex - px
	if gap > d.Approach {
		frame[config.ActionMoveRight] = true
	}
	if gap < d.Reach && tick%2 == 1 {
		frame[config.ActionAttack] = true
	}

	if err := s.SetInput(d.Player, frame); err != nil {
		log.Printf("[sim] duel: %v", err)
	}
}
