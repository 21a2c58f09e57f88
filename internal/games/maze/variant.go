package maze

import "github.com/vovakirdan/tui-maze/internal/config"

// Variant is a registered flavour of the maze game.
type Variant struct {
	ID    string
	Title string
	// Apply adjusts the loaded config for this variant.
	Apply func(cfg *config.MazeConfig)
}

// Variants lists every playable variant in menu order.
var Variants = []Variant{
	{
		ID:    "maze",
		Title: "Maze",
		Apply: func(*config.MazeConfig) {},
	},
	{
		ID:    "maze_items",
		Title: "Maze: Treasure Run",
		Apply: func(cfg *config.MazeConfig) {
			cfg.Mobs.Count = 0
			cfg.DamageWalls.Policy = config.PolicyNone
			cfg.Items.Kinds = []string{"heal", "weapon", "invincible"}
		},
	},
	{
		ID:    "maze_mobs",
		Title: "Maze: Haunted",
		Apply: func(cfg *config.MazeConfig) {
			cfg.Items.Count = 0
			cfg.DamageWalls.Policy = config.PolicyNone
			cfg.Mobs.Count = 10
			cfg.Mobs.TrackerRatio = 0
		},
	},
}

// VariantByID returns the variant with the given ID.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
