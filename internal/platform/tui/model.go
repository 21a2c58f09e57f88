package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// Model is the Bubble Tea model for running a maze variant.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool   // Leave to the menu instead of exiting
	runSaved   bool   // Whether the current run has been recorded
	lastRunID  string // ID of the most recently recorded run
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output; a nil store disables run recording.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.start()
	return m
}

// start resets the game with the current seed and logs the run.
func (m *Model) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.gameState.Seed)
	if m.gameState.GameOver && m.gameState.Ticks == 0 {
		m.logger.Error("run could not start", "game", m.game.ID())
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.abandon()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.abandon()
		m.back = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		// Restart only once the run is over
		return m, nil
	case action != core.ActionNone:
		m.logger.Debug("input", "game", m.game.ID(), "action", action)
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize only changes the screen; the maze is laid out when rendering.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// New maze for the next run
		m.config.Seed = time.Now().UnixNano()
		m.start()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.logger.Debug("event", "game", m.game.ID(), "tick", m.gameState.Ticks, "event", e)
	}

	if m.gameState.GameOver && !m.runSaved {
		outcome := storage.OutcomeGameOver
		if m.gameState.Cleared {
			outcome = storage.OutcomeCleared
		}
		m.record(outcome)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// abandon records an unfinished run as quit.
func (m *Model) abandon() {
	if !m.gameState.GameOver {
		m.record(storage.OutcomeQuit)
	}
}

// record saves the current run once. Runs that never ticked are skipped.
func (m *Model) record(outcome string) {
	m.runSaved = true
	st := m.gameState
	m.logger.Info("run finished",
		"game", m.game.ID(), "outcome", outcome,
		"score", st.Score, "hp", st.HP, "ticks", st.Ticks)

	if m.store == nil || st.Ticks == 0 {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Seed:    st.Seed,
		Outcome: outcome,
		Score:   st.Score,
		Ticks:   int64(st.Ticks),
		HP:      st.HP,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRunID = id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(screenText(m.screen)), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenText returns the screen as plain text with trailing blanks trimmed
// from every row.
func screenText(s *core.Screen) string {
	var b strings.Builder
	for _, line := range strings.Split(s.String(), "\n") {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the last recorded run, or "" if none.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// WantsBack reports whether the player left for the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for the given game.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.WantsBack(), nil
	}
	return false, nil
}
