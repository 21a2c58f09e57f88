package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Rows:     21,
		Cols:     31,
		CellSize: 32,
		DamageWalls: DamageConfig{
			Policy:      PolicyAdjacency,
			Probability: 0.2,
		},
		Player: PlayerConfig{
			Speed:   4,
			Size:    16,
			MaxHP:   100,
			StartHP: 0,
			Damage:  10,
			Heal:    20,
		},
		Mobs: MobConfig{
			Count:        5,
			Speed:        2,
			Size:         16,
			TrackerRatio: 0.3,
		},
		Items: ItemConfig{
			Count:      5,
			Kinds:      []string{"heal", "score"},
			ScoreValue: 10,
			Size:       32,
		},
		Effects: EffectConfig{
			WeaponTicks:      300,
			InvincibleTicks:  300,
			DamageGuardTicks: 60,
		},
		Spawn: SpawnConfig{
			SafeRadius:  3,
			MaxAttempts: 1000,
		},
		Input: InputConfig{
			HoldTicks: 12,
		},
	}
}
