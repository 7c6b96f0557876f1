// Package nbol adapts the combat simulation to the terminal platform: it maps
// platform input to simulation input, keeps presentation state such as
// floating damage numbers, and renders the arena into a core.Screen.
package nbol

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nbol/internal/config"
	"github.com/vovakirdan/nbol/internal/core"
	"github.com/vovakirdan/nbol/internal/games/nbol/sim"
	"github.com/vovakirdan/nbol/internal/registry"
)

// Mode selects how a run ends.
type Mode string

const (
	ModeArena   Mode = "arena"   // ends after the configured number of waves
	ModeEndless Mode = "endless" // waves never run out
)

const (
	popupTTL     = 0.5 // seconds a damage number stays up
	bannerTTL    = 2.0
	waveBonus    = 100 // score per cleared wave
	popupRiseMax = sim.TileSize
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// DifficultyPreset returns the preset new games start with.
func DifficultyPreset() string {
	return string(difficultyPreset)
}

// SetLogger routes simulation diagnostics to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig returns the effective configuration for new games.
func LoadConfig() (config.NbolConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// popup is a floating damage number.
type popup struct {
	pos  sim.Vec3
	text string
	crit bool
	ttl  float64
}

// Game implements registry.Game for an nbol run.
type Game struct {
	mode  Mode
	cfg   config.NbolConfig
	world *sim.World
	rng   *rand.Rand

	tick     uint64
	tickRate int
	screenW  int
	screenH  int

	preset   string
	kills    int
	level    uint32
	score    int
	gameOver bool
	won      bool
	paused   bool

	// Presentation
	popups    []popup
	banner    string
	bannerTTL float64
	camera    sim.Vec3
}

// New creates an arena mode game.
func New() *Game {
	return &Game{mode: ModeArena}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(string(ModeArena), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeEndless), func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Nbol (Endless)"
	}
	return "Nbol Arena"
}

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.preset = string(difficultyPreset)
	gameCfg, err := LoadConfig()
	if err != nil {
		logger.Warn("using default config", "err", err)
		gameCfg = config.DefaultNbolConfig()
		config.ApplyPreset(&gameCfg, difficultyPreset)
	}
	g.ResetWithConfig(cfg, gameCfg)
}

// ResetWithConfig starts a new run with an explicit configuration.
func (g *Game) ResetWithConfig(cfg core.RuntimeConfig, gameCfg config.NbolConfig) {
	g.cfg = gameCfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = sim.DefaultTickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if g.preset == "" {
		g.preset = string(difficultyPreset)
	}
	g.kills = 0
	g.level = 1
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.popups = g.popups[:0]
	g.banner = ""
	g.bannerTTL = 0

	waves := 0
	if g.mode == ModeArena {
		waves = gameCfg.Waves.Count
	}
	g.world = sim.NewWorld(gameCfg,
		sim.WithSeed(cfg.Seed),
		sim.WithTickRate(g.tickRate),
		sim.WithLogger(logger),
		sim.WithWaveLimit(waves),
	)
	if err := g.world.Start(); err != nil {
		logger.Error("start world", "err", err)
	}
	if p, ok := g.world.Player(); ok {
		g.camera = p.Position()
	}
	g.showBanner("WAVE 1")
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.ResetWithConfig(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		}, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.gameOver || g.won || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	report := g.world.Tick(simInput(in))
	g.consume(report)
	g.age(g.world.TickSeconds())

	return core.StepResult{State: g.State()}
}

// simInput maps held and pressed platform actions to simulation input.
func simInput(in core.InputFrame) sim.Input {
	return sim.Input{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Boost: in.Has(core.ActionBoost),
		Cast:  in.Has(core.ActionCast),
	}
}

// consume turns tick events into presentation state and run results.
func (g *Game) consume(r sim.TickReport) {
	for _, d := range r.Events.Damage {
		text := fmt.Sprintf("%.0f", d.Amount)
		if d.IsCrit {
			text += "!"
		}
		g.popups = append(g.popups, popup{pos: d.Position, text: text, crit: d.IsCrit, ttl: popupTTL})
	}

	for _, d := range r.Events.Defeats {
		switch d.Kind {
		case sim.KindEnemy:
			g.kills++
		case sim.KindPlayer:
			g.level = d.Level
			g.gameOver = true
			logger.Info("player defeated", "mode", g.mode, "tick", g.tick, "score", g.score)
		}
	}

	for _, lu := range r.Events.LevelUps {
		g.showBanner(fmt.Sprintf("LEVEL UP! %d", lu.Level))
	}

	if r.WaveCleared && !r.Cleared {
		g.showBanner(fmt.Sprintf("WAVE %d CLEARED", r.Wave+1))
	}
	if r.Cleared && !g.gameOver {
		g.won = true
		logger.Info("arena cleared", "tick", g.tick)
	}

	stats := g.world.Stats()
	g.score = int(stats.XPEarned) + waveBonus*stats.WavesCleared

	if p, ok := g.world.Player(); ok {
		g.camera = p.Position()
		g.level = p.Level()
	}
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTTL = bannerTTL
}

// age expires presentation timers.
func (g *Game) age(dt float64) {
	live := g.popups[:0]
	for _, p := range g.popups {
		p.ttl -= dt
		if p.ttl > 0 {
			live = append(live, p)
		}
	}
	g.popups = live

	if g.bannerTTL > 0 {
		g.bannerTTL -= dt
		if g.bannerTTL <= 0 {
			g.banner = ""
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// World exposes the running simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// Summary describes a finished or running game for persistence.
type Summary struct {
	Mode       string
	Difficulty string
	Score      int
	Level      uint32
	Kills      int
	Waves      int
	Ticks      uint64
	Outcome    string
}

// Outcome values.
const (
	OutcomeDefeated = "defeated"
	OutcomeCleared  = "cleared"
	OutcomeAborted  = "aborted"
)

// Summary returns the run totals.
func (g *Game) Summary() Summary {
	s := Summary{
		Mode:       string(g.mode),
		Difficulty: g.preset,
		Score:      g.score,
		Level:      g.level,
		Kills:      g.kills,
		Waves:      g.world.Stats().WavesCleared,
		Ticks:      g.tick,
		Outcome:    OutcomeAborted,
	}
	switch {
	case g.gameOver:
		s.Outcome = OutcomeDefeated
	case g.won:
		s.Outcome = OutcomeCleared
	}
	return s
}
