package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/mysticwoods/attack"
	"github.com/automoto/mysticwoods/combat"
	"github.com/automoto/mysticwoods/movement"
	"gopkg.in/yaml.v3"
)

// MovementConfig contains the acceleration profile of an actor
type MovementConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
}

// AttackConfig contains melee timing and hit-volume placement
type AttackConfig struct {
	Duration     float64 `yaml:"duration"` // seconds the hit-volume stays alive
	HitboxWidth  float64 `yaml:"hitbox_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`
	OffsetX      float64 `yaml:"offset_x"` // from the owner's center
	OffsetY      float64 `yaml:"offset_y"`
}

// ActorConfig contains the creation values for one kind of actor
type ActorConfig struct {
	// Combat
	Health           float64 `yaml:"health"`
	AttackPower      float64 `yaml:"attack_power"`
	DamageResistance float64 `yaml:"damage_resistance"`
	AttackChance     float64 `yaml:"attack_chance"` // percent

	Movement MovementConfig `yaml:"movement"`
	Attack   AttackConfig   `yaml:"attack"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// CombatConfig contains resolver policies
type CombatConfig struct {
	Resistance    string `yaml:"resistance"`      // "ignore" or "flat"
	OncePerTarget bool   `yaml:"once_per_target"` // one hit per target per attack window
}

// SimConfig contains world and loop settings
type SimConfig struct {
	TickRate    int `yaml:"tick_rate"`
	SpaceWidth  int `yaml:"space_width"`
	SpaceHeight int `yaml:"space_height"`
	CellSize    int `yaml:"cell_size"`
}

// Config is passed explicitly to everything that creates actors or worlds.
type Config struct {
	Player ActorConfig  `yaml:"player"`
	Enemy  ActorConfig  `yaml:"enemy"`
	Combat CombatConfig `yaml:"combat"`
	Sim    SimConfig    `yaml:"sim"`
}

// Default returns a fresh configuration holding the stock values.
func Default() *Config {
	return &Config{
		Player: ActorConfig{
			Health:           10,
			AttackPower:      10,
			DamageResistance: 10,
			AttackChance:     0,
			Movement: MovementConfig{
				Acceleration: 800,
				Deceleration: 700,
				MaxSpeed:     200,
			},
			Attack: AttackConfig{
				Duration:     0.5,
				HitboxWidth:  40,
				HitboxHeight: 40,
			},
			CollisionWidth:  15,
			CollisionHeight: 22,
		},
		Enemy: ActorConfig{
			Health:           30,
			AttackPower:      5,
			DamageResistance: 0,
			AttackChance:     25,
			Movement: MovementConfig{
				Acceleration: 600,
				Deceleration: 600,
				MaxSpeed:     120,
			},
			Attack: AttackConfig{
				Duration:     0.4,
				HitboxWidth:  32,
				HitboxHeight: 32,
			},
			CollisionWidth:  16,
			CollisionHeight: 16,
		},
		Combat: CombatConfig{
			Resistance: "ignore",
		},
		Sim: SimConfig{
			TickRate:    60,
			SpaceWidth:  1024,
			SpaceHeight: 1024,
			CellSize:    16,
		},
	}
}

// Load reads a YAML file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse overlays a YAML document on the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Player.validate("player"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Enemy.validate("enemy"); err != nil {
		errs = append(errs, err)
	}
	if _, err := combat.ParseResistanceMode(c.Combat.Resistance); err != nil {
		errs = append(errs, fmt.Errorf("combat: %w", err))
	}
	if c.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sim: tick_rate must be positive, got %d", c.Sim.TickRate))
	}
	if c.Sim.SpaceWidth <= 0 || c.Sim.SpaceHeight <= 0 || c.Sim.CellSize <= 0 {
		errs = append(errs, errors.New("sim: space dimensions and cell_size must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (a ActorConfig) validate(name string) error {
	switch {
	case a.Health <= 0:
		return fmt.Errorf("%s: health must be positive, got %v", name, a.Health)
	case a.AttackChance < 0 || a.AttackChance > 100:
		return fmt.Errorf("%s: attack_chance must be within 0..100, got %v", name, a.AttackChance)
	case a.Movement.Acceleration < 0 || a.Movement.Deceleration < 0 || a.Movement.MaxSpeed < 0:
		return fmt.Errorf("%s: movement values must not be negative", name)
	case a.Attack.Duration <= 0:
		return fmt.Errorf("%s: attack duration must be positive, got %v", name, a.Attack.Duration)
	case a.Attack.HitboxWidth <= 0 || a.Attack.HitboxHeight <= 0:
		return fmt.Errorf("%s: hitbox size must be positive", name)
	case a.CollisionWidth <= 0 || a.CollisionHeight <= 0:
		return fmt.Errorf("%s: collision size must be positive", name)
	}
	return nil
}

// Stats returns the initial combat stats at full health.
func (a ActorConfig) Stats() combat.Stats {
	return combat.NewStats(a.Health, a.AttackPower, a.DamageResistance, a.AttackChance)
}

// Profile returns the movement profile.
func (a ActorConfig) Profile() movement.Profile {
	return movement.Profile{
		Acceleration: a.Movement.Acceleration,
		Deceleration: a.Movement.Deceleration,
		MaxSpeed:     a.Movement.MaxSpeed,
	}
}

// AttackState returns a fresh idle attack state.
func (a ActorConfig) AttackState() attack.State {
	return attack.NewState(a.Attack.Duration, attack.HitboxSpec{
		Width:   a.Attack.HitboxWidth,
		Height:  a.Attack.HitboxHeight,
		OffsetX: a.Attack.OffsetX,
		OffsetY: a.Attack.OffsetY,
	})
}

// ResistanceMode returns the parsed resistance policy. Invalid strings fall
// back to ignore; Validate reports them.
func (c CombatConfig) ResistanceMode() combat.ResistanceMode {
	m, _ := combat.ParseResistanceMode(c.Resistance)
	return m
}
