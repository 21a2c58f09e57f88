package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable that overrides a config key.
const EnvPrefix = "MAZE_"

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadMaze(customPath string) (MazeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseMaze(data)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMaze(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "maze.yaml")); err == nil {
		if cfg, err := parseMaze(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMaze(defaultMazeYAML)
	if err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseMaze(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg MazeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// ApplyEnv overrides config keys from MAZE_* variables. Values from envFile
// (a dotenv file, skipped if missing) apply only where the process
// environment does not set the same variable.
func ApplyEnv(cfg *MazeConfig, envFile string) error {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("config: cannot read %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	return applyOverrides(cfg, lookup)
}

type override struct {
	key string
	set func(cfg *MazeConfig, v string) error
}

func intField(field func(*MazeConfig) *int) func(*MazeConfig, string) error {
	return func(cfg *MazeConfig, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(cfg) = n
		return nil
	}
}

func floatField(field func(*MazeConfig) *float64) func(*MazeConfig, string) error {
	return func(cfg *MazeConfig, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*field(cfg) = f
		return nil
	}
}

var overrides = []override{
	{"ROWS", intField(func(c *MazeConfig) *int { return &c.Rows })},
	{"COLS", intField(func(c *MazeConfig) *int { return &c.Cols })},
	{"CELL_SIZE", intField(func(c *MazeConfig) *int { return &c.CellSize })},
	{"SEED", func(c *MazeConfig, v string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return err
		}
		c.Seed = n
		return nil
	}},
	{"DAMAGE_POLICY", func(c *MazeConfig, v string) error {
		c.DamageWalls.Policy = strings.ToLower(strings.TrimSpace(v))
		return nil
	}},
	{"DAMAGE_PROBABILITY", floatField(func(c *MazeConfig) *float64 { return &c.DamageWalls.Probability })},
	{"MOB_COUNT", intField(func(c *MazeConfig) *int { return &c.Mobs.Count })},
	{"MOB_SPEED", intField(func(c *MazeConfig) *int { return &c.Mobs.Speed })},
	{"ITEM_COUNT", intField(func(c *MazeConfig) *int { return &c.Items.Count })},
	{"PLAYER_SPEED", intField(func(c *MazeConfig) *int { return &c.Player.Speed })},
	{"MAX_HP", intField(func(c *MazeConfig) *int { return &c.Player.MaxHP })},
}

func applyOverrides(cfg *MazeConfig, lookup func(string) (string, bool)) error {
	for _, o := range overrides {
		key := EnvPrefix + o.key
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		if err := o.set(cfg, v); err != nil {
			return fmt.Errorf("config: bad value for %s: %w", key, err)
		}
	}
	return nil
}
