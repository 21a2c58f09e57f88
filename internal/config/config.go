// Package config provides YAML-based game configuration loading for the maze.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Rows        int          `yaml:"rows"`
	Cols        int          `yaml:"cols"`
	CellSize    int          `yaml:"cell_size"`
	Seed        int64        `yaml:"seed"` // 0 = use the runtime seed
	DamageWalls DamageConfig `yaml:"damage_walls"`
	Player      PlayerConfig `yaml:"player"`
	Mobs        MobConfig    `yaml:"mobs"`
	Items       ItemConfig   `yaml:"items"`
	Effects     EffectConfig `yaml:"effects"`
	Spawn       SpawnConfig  `yaml:"spawn"`
	Input       InputConfig  `yaml:"input"`
}

// DamageConfig selects how damage walls are derived.
type DamageConfig struct {
	Policy      string  `yaml:"policy"`      // "none", "adjacency" or "probabilistic"
	Probability float64 `yaml:"probability"` // Used by "probabilistic"
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed   int `yaml:"speed"`
	Size    int `yaml:"size"`
	MaxHP   int `yaml:"max_hp"`
	StartHP int `yaml:"start_hp"` // 0 = start at max_hp
	Damage  int `yaml:"damage"`   // HP lost per damage wall contact
	Heal    int `yaml:"heal"`     // HP restored by a heal item
}

// MobConfig defines mob parameters.
type MobConfig struct {
	Count        int     `yaml:"count"`
	Speed        int     `yaml:"speed"`
	Size         int     `yaml:"size"`
	TrackerRatio float64 `yaml:"tracker_ratio"`
}

// ItemConfig defines item parameters.
type ItemConfig struct {
	Count      int      `yaml:"count"`
	Kinds      []string `yaml:"kinds"`
	ScoreValue int      `yaml:"score_value"`
	Size       int      `yaml:"size"`
}

// EffectConfig defines effect durations in ticks.
type EffectConfig struct {
	WeaponTicks      int `yaml:"weapon_ticks"`
	InvincibleTicks  int `yaml:"invincible_ticks"`
	DamageGuardTicks int `yaml:"damage_guard_ticks"`
}

// SpawnConfig defines spawn placement limits.
type SpawnConfig struct {
	SafeRadius  int `yaml:"safe_radius"` // Manhattan cells kept free of mobs around the start
	MaxAttempts int `yaml:"max_attempts"`
}

// InitialHP returns the HP a run starts with.
func (p PlayerConfig) InitialHP() int {
	if p.StartHP == 0 {
		return p.MaxHP
	}
	return p.StartHP
}

// InputConfig defines how key presses turn into movement.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key press keeps a direction held
}

// Damage wall policy names.
const (
	PolicyNone          = "none"
	PolicyAdjacency     = "adjacency"
	PolicyProbabilistic = "probabilistic"
)

// Item kind names.
var ItemKinds = []string{"heal", "score", "weapon", "invincible"}

// Validate rejects values no maze can be built from.
func (c MazeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Rows >= 3 && c.Cols >= 3, "grid %dx%d must be at least 3x3", c.Rows, c.Cols)
	check(c.CellSize > 0, "cell_size %d must be positive", c.CellSize)

	switch c.DamageWalls.Policy {
	case PolicyNone, PolicyAdjacency, PolicyProbabilistic:
	default:
		errs = append(errs, fmt.Errorf("unknown damage_walls.policy %q", c.DamageWalls.Policy))
	}
	check(c.DamageWalls.Probability >= 0 && c.DamageWalls.Probability <= 1,
		"damage_walls.probability %v must be in [0, 1]", c.DamageWalls.Probability)

	check(c.Player.Speed >= 0, "player.speed must be non-negative")
	check(c.Player.Size > 0 && c.Player.Size <= c.CellSize, "player.size %d must be in (0, cell_size]", c.Player.Size)
	check(c.Player.MaxHP > 0, "player.max_hp must be positive")
	check(c.Player.StartHP >= 0 && c.Player.StartHP <= c.Player.MaxHP, "player.start_hp %d must be in [0, max_hp]", c.Player.StartHP)
	check(c.Player.Damage >= 0 && c.Player.Heal >= 0, "player.damage and player.heal must be non-negative")

	check(c.Mobs.Count >= 0 && c.Mobs.Speed >= 0, "mobs.count and mobs.speed must be non-negative")
	check(c.Mobs.Count == 0 || c.Mobs.Size > 0, "mobs.size must be positive")
	check(c.Mobs.TrackerRatio >= 0 && c.Mobs.TrackerRatio <= 1, "mobs.tracker_ratio %v must be in [0, 1]", c.Mobs.TrackerRatio)

	check(c.Items.Count >= 0, "items.count must be non-negative")
	check(c.Items.Count == 0 || (len(c.Items.Kinds) > 0 && c.Items.Size > 0), "items need kinds and a positive size")
	for _, k := range c.Items.Kinds {
		check(slices.Contains(ItemKinds, k), "unknown item kind %q", k)
	}

	check(c.Effects.WeaponTicks >= 0 && c.Effects.InvincibleTicks >= 0 && c.Effects.DamageGuardTicks >= 0,
		"effect durations must be non-negative")
	check(c.Spawn.SafeRadius >= 0, "spawn.safe_radius must be non-negative")
	check(c.Spawn.MaxAttempts > 0, "spawn.max_attempts must be positive")
	check(c.Input.HoldTicks > 0, "input.hold_ticks must be positive")

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid maze config: %w", err)
	}
	return nil
}
