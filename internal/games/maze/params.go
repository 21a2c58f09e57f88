package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

var itemKindNames = map[string]core.ItemKind{
	"heal":       core.ItemHeal,
	"score":      core.ItemScore,
	"weapon":     core.ItemWeapon,
	"invincible": core.ItemInvincibility,
}

// ParamsFromConfig converts a validated config into session parameters.
// A non-zero seed in the config wins over the runtime seed.
func ParamsFromConfig(cfg config.MazeConfig, runtimeSeed int64) (core.Params, error) {
	if err := cfg.Validate(); err != nil {
		return core.Params{}, err
	}

	mode, err := core.ParseDamageMode(cfg.DamageWalls.Policy)
	if err != nil {
		return core.Params{}, fmt.Errorf("config: %w", err)
	}

	kinds := make([]core.ItemKind, 0, len(cfg.Items.Kinds))
	for _, name := range cfg.Items.Kinds {
		kinds = append(kinds, itemKindNames[name])
	}

	seed := runtimeSeed
	if cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return core.Params{
		Gen: core.GenParams{
			Rows:     cfg.Rows,
			Cols:     cfg.Cols,
			CellSize: cfg.CellSize,
			Seed:     seed,
			Damage:   core.DamagePolicy{Mode: mode, P: cfg.DamageWalls.Probability},
		},
		PlayerSpeed:      cfg.Player.Speed,
		PlayerSize:       cfg.Player.Size,
		StartHP:          cfg.Player.InitialHP(),
		MaxHP:            cfg.Player.MaxHP,
		Damage:           cfg.Player.Damage,
		DamageGuardTicks: cfg.Effects.DamageGuardTicks,
		Items: core.ItemRules{
			Heal:            cfg.Player.Heal,
			ScoreValue:      cfg.Items.ScoreValue,
			WeaponTicks:     cfg.Effects.WeaponTicks,
			InvincibleTicks: cfg.Effects.InvincibleTicks,
		},
		ItemCount:    cfg.Items.Count,
		ItemKinds:    kinds,
		ItemSize:     cfg.Items.Size,
		MobCount:     cfg.Mobs.Count,
		MobSpeed:     cfg.Mobs.Speed,
		MobSize:      cfg.Mobs.Size,
		TrackerRatio: cfg.Mobs.TrackerRatio,
		SafeRadius:   cfg.Spawn.SafeRadius,
		MaxAttempts:  cfg.Spawn.MaxAttempts,
	}, nil
}
