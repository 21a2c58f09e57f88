package maze

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/config"
	platformcore "github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// useConfig points the package at a config file built from cfg for one test.
func useConfig(t *testing.T, cfg config.MazeConfig) {
	t.Helper()
	data, err := config.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	SetConfigPath(path)
	SetEnvFile("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetEnvFile(".env")
	})
}

func runtimeConfig(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
		}
		g, err := registry.Create(v.ID)
		require.NoError(t, err)
		assert.Equal(t, v.Title, g.Title())
	}

	_, ok := VariantByID("nope")
	assert.False(t, ok)
}

func TestDeterminism(t *testing.T) {
	useConfig(t, config.DefaultMazeConfig())
	v, _ := VariantByID("maze")

	g1 := New(v)
	g1.Reset(runtimeConfig(12345))
	g2 := New(v)
	g2.Reset(runtimeConfig(12345))
	require.NoError(t, g1.Err())

	input := platformcore.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		switch i % 50 {
		case 0:
			input.Set(platformcore.ActionDown)
		case 25:
			input.Set(platformcore.ActionRight)
		}
		g1.Step(input)
		g2.Step(input)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestConfigSeedWins(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Seed = 77
	useConfig(t, cfg)

	g := New(Variants[0])
	g.Reset(runtimeConfig(5))
	assert.Equal(t, int64(77), g.Snapshot().Seed)
	assert.Equal(t, int64(77), g.State().Seed)
}

func TestSeedOverrideBeatsConfigSeed(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Seed = 7
	useConfig(t, cfg)
	SetSeedOverride(42)
	t.Cleanup(func() { SetSeedOverride(0) })

	loaded, err := LoadConfig(Variants[0])
	require.NoError(t, err)
	assert.Equal(t, int64(42), loaded.Seed)

	g := New(Variants[0])
	g.Reset(runtimeConfig(5))
	assert.Equal(t, int64(42), g.Snapshot().Seed)

	SetSeedOverride(0)
	g.Reset(runtimeConfig(5))
	assert.Equal(t, int64(7), g.Snapshot().Seed, "config seed applies without an override")
}

func TestVariantShapes(t *testing.T) {
	useConfig(t, config.DefaultMazeConfig())

	tests := []struct {
		id    string
		mobs  int
		items int
	}{
		{"maze", 5, 5},
		{"maze_items", 0, 5},
		{"maze_mobs", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			v, ok := VariantByID(tt.id)
			require.True(t, ok)
			g := New(v)
			g.Reset(runtimeConfig(3))
			require.NoError(t, g.Err())

			snap := g.Snapshot()
			assert.Equal(t, tt.mobs, snap.Mobs)
			assert.Equal(t, tt.items, snap.Items)
			assert.Equal(t, StatePlaying, snap.State)
		})
	}
}

func TestItemsVariantHasNoDamageWalls(t *testing.T) {
	useConfig(t, config.DefaultMazeConfig())
	v, _ := VariantByID("maze_items")
	g := New(v)
	g.Reset(runtimeConfig(3))
	require.NoError(t, g.Err())
	assert.Empty(t, g.Session().Grid().DamageWalls())
}

func TestHoldState(t *testing.T) {
	h := newHoldState(3)
	press := func(actions ...platformcore.Action) platformcore.InputFrame {
		f := platformcore.NewInputFrame()
		for _, a := range actions {
			f.Set(a)
		}
		return f
	}
	none := press()

	assert.Equal(t, core.Intent{DX: 1}, h.Update(press(platformcore.ActionRight)))
	assert.Equal(t, core.Intent{DX: 1}, h.Update(none))
	assert.Equal(t, core.Intent{DX: 1}, h.Update(none))
	assert.Equal(t, core.Intent{}, h.Update(none), "hold expires")

	h.Update(press(platformcore.ActionRight))
	assert.Equal(t, core.Intent{DX: -1}, h.Update(press(platformcore.ActionLeft)), "new press replaces the axis")
	assert.Equal(t, core.Intent{DX: -1, DY: 1}, h.Update(press(platformcore.ActionDown)), "axes combine")
	assert.Equal(t, core.Intent{DY: 1}, h.Update(press(platformcore.ActionLeft, platformcore.ActionRight)), "opposites cancel")

	h.Release()
	assert.Equal(t, core.Intent{}, h.Update(none))
}

func TestPauseStopsSimulation(t *testing.T) {
	useConfig(t, config.DefaultMazeConfig())
	g := New(Variants[0])
	g.Reset(runtimeConfig(9))

	pause := platformcore.NewInputFrame()
	pause.Set(platformcore.ActionPause)
	none := platformcore.NewInputFrame()

	g.Step(none)
	g.Step(pause)
	ticks := g.State().Ticks
	for i := 0; i < 10; i++ {
		g.Step(none)
	}
	assert.True(t, g.State().Paused)
	assert.Equal(t, ticks, g.State().Ticks)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	g.Step(pause)
	g.Step(none)
	assert.False(t, g.State().Paused)
	assert.Greater(t, g.State().Ticks, ticks)
}

func TestRender(t *testing.T) {
	useConfig(t, config.DefaultMazeConfig())
	g := New(Variants[0])
	g.Reset(runtimeConfig(4))

	w, h := g.RequiredSize()
	assert.Equal(t, 62, w)
	assert.Equal(t, 23, h)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, screen.Row(0), "HP: 100/100")
	assert.Contains(t, out, "()")
	assert.Contains(t, out, "<>")
	assert.Contains(t, screen.Row(hudHeight), "▓▓", "outer wall touching floor is a damage wall")
}

func TestRenderTooSmall(t *testing.T) {
	useConfig(t, config.DefaultMazeConfig())
	g := New(Variants[0])
	g.Reset(runtimeConfig(4))

	screen := platformcore.NewScreen(40, 12)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestBadConfigShowsError(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Mobs.Count = 100000
	useConfig(t, cfg)

	g := New(Variants[0])
	g.Reset(runtimeConfig(1))
	require.Error(t, g.Err())
	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateError, g.Snapshot().State)

	// Steps are harmless.
	g.Step(platformcore.NewInputFrame())

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Could not start the maze"))
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.DamageWalls.Policy = config.PolicyProbabilistic
	cfg.DamageWalls.Probability = 0.25
	cfg.Items.Kinds = []string{"weapon", "invincible"}

	p, err := ParamsFromConfig(cfg, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(99), p.Gen.Seed)
	assert.Equal(t, core.DamagePolicy{Mode: core.DamageProbabilistic, P: 0.25}, p.Gen.Damage)
	assert.Equal(t, []core.ItemKind{core.ItemWeapon, core.ItemInvincibility}, p.ItemKinds)
	assert.Equal(t, 300, p.Items.WeaponTicks)
	assert.Equal(t, 60, p.DamageGuardTicks)
	assert.NoError(t, p.Validate())

	cfg.Rows = 1
	_, err = ParamsFromConfig(cfg, 99)
	assert.Error(t, err)
}
