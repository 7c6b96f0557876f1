package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nbol/internal/core"
	"github.com/vovakirdan/nbol/internal/games/nbol"
	"github.com/vovakirdan/nbol/internal/registry"
	"github.com/vovakirdan/nbol/internal/storage"
)

// Options tune a Model beyond the runtime config.
type Options struct {
	// Renderer styles output. Nil uses the local terminal.
	Renderer *lipgloss.Renderer
	// Logger receives persistence errors. Nil discards them.
	Logger *log.Logger
	// HoldTicks is passed to NewKeyMapper.
	HoldTicks int
	// Player names the session in logs, e.g. the SSH user.
	Player string
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	palette    Palette
	logger     *log.Logger
	player     string
	gameState  core.GameState
	saved      bool // whether the current run has been persisted
	quitting   bool
	showScores bool
	scoreboard ScoreboardModel
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		keys:    NewKeyMapper(opts.HoldTicks),
		palette: NewPalette(opts.Renderer),
		logger:  logger,
		player:  opts.Player,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showScores {
			return m.updateScoreboard(msg)
		}
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
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if m.gameState.GameOver || m.gameState.Won || m.gameState.Paused {
			m.openScoreboard()
		}
		return m, nil
	}

	if m.keys.Press(msg) {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) openScoreboard() {
	m.showScores = true
	m.keys.Release()
	m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.game.ID(), "")
	m.scoreboard.embedded = true
}

// updateScoreboard forwards keys to the embedded scoreboard.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.showScores = false
	}
	return m, cmd
}

// handleResize resizes the screen. The run continues; the game adapts its
// view on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.showScores {
		next, _ := m.scoreboard.Update(msg)
		m.scoreboard = next.(ScoreboardModel)
	}
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.keys.Frame()
	if m.showScores {
		in = core.NewInputFrame()
		if !m.gameState.Paused && !m.gameState.GameOver && !m.gameState.Won {
			in.Set(core.ActionPause)
		}
	}

	ended := m.gameState.GameOver || m.gameState.Won
	if ended && in.Has(core.ActionRestart) {
		// A restart draws a fresh arena.
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver || m.gameState.Won {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the current run once. Aborted runs without score are
// not recorded.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	rec := RunRecordFor(m.game)
	if rec.Outcome == nbol.OutcomeAborted && rec.Score <= 0 {
		return
	}
	m.saved = true

	if rec.Score > 0 {
		if _, err := m.store.SaveScore(rec.GameID, rec.Score); err != nil {
			m.logger.Error("save score", "game", rec.GameID, "err", err)
		}
	}
	id, err := m.store.SaveRun(rec)
	if err != nil {
		m.logger.Error("save run", "game", rec.GameID, "err", err)
		return
	}
	m.logger.Info("run saved",
		"run", id,
		"player", m.player,
		"score", rec.Score,
		"outcome", rec.Outcome,
	)
}

// RunRecordFor converts a game's totals to a storage record. Games without
// run summaries produce a record carrying only the score.
func RunRecordFor(game registry.Game) storage.RunRecord {
	s, ok := game.(interface{ Summary() nbol.Summary })
	if !ok {
		st := game.State()
		outcome := nbol.OutcomeAborted
		if st.GameOver {
			outcome = nbol.OutcomeDefeated
		}
		return storage.RunRecord{GameID: game.ID(), Score: st.Score, Outcome: outcome}
	}

	sum := s.Summary()
	return storage.RunRecord{
		GameID:     game.ID(),
		Difficulty: sum.Difficulty,
		Score:      sum.Score,
		Level:      int(sum.Level),
		Kills:      sum.Kills,
		Waves:      sum.Waves,
		Ticks:      sum.Ticks,
		Outcome:    sum.Outcome,
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".nbol", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// Run starts a local Bubble Tea program for game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
