package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nbol/internal/config"
)

// DefaultTickRate is the number of ticks per simulated second.
const DefaultTickRate = 60

// Stats are running totals for a world.
type Stats struct {
	Kills        int
	Casts        int
	Crits        int
	XPEarned     float64
	WavesCleared int
}

// World owns every entity and advances them one fixed tick at a time.
// A World is not safe for concurrent use.
type World struct {
	cfg        config.NbolConfig
	dt         float64
	rng        *rand.Rand
	resolver   *Resolver
	logger     *log.Logger
	bounds     Bounds
	difficulty *config.DifficultyManager

	nextID      EntityID
	player      *Player
	enemies     *Pool[Enemy]
	projectiles *Pool[Projectile]
	decorations *Pool[Decoration]
	events      Events

	tick    uint64
	elapsed float64
	stats   Stats

	wave        int
	waveLimit   int
	waveActive  bool
	waveCleared bool
	pendingWave bool
	cleared     bool

	warnedNoPlayer bool
}

// Option configures a World.
type Option func(*World)

// WithSeed seeds the world's random source.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTickRate sets the fixed number of ticks per second.
func WithTickRate(rate int) Option {
	return func(w *World) {
		if rate > 0 {
			w.dt = 1.0 / float64(rate)
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithBounds overrides the arena bounds derived from the configuration.
func WithBounds(b Bounds) Option {
	return func(w *World) {
		w.bounds = b
	}
}

// WithWaveLimit ends the run after n cleared waves. Zero means endless.
func WithWaveLimit(n int) Option {
	return func(w *World) {
		w.waveLimit = n
	}
}

// NewWorld creates an empty world. The configuration is expected to be
// valid; see config.NbolConfig.Validate.
func NewWorld(cfg config.NbolConfig, opts ...Option) *World {
	w := &World{
		cfg:         cfg,
		dt:          1.0 / DefaultTickRate,
		rng:         rand.New(rand.NewSource(1)),
		logger:      log.New(io.Discard),
		bounds:      CenteredBounds(cfg.Arena.Width, cfg.Arena.Height),
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		enemies:     NewPool[Enemy](),
		projectiles: NewPool[Projectile](),
		decorations: NewPool[Decoration](),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.resolver = NewResolver(w.rng)
	return w
}

// Start spawns the player at the configured start and the first wave.
func (w *World) Start() error {
	start := w.cfg.Player.Start
	if _, err := w.SpawnPlayer(Tiles(start.X, start.Y)); err != nil {
		return err
	}
	w.SpawnWave()
	return nil
}

func (w *World) allocID() EntityID {
	w.nextID++
	return w.nextID
}

// Tick advances the world by one fixed step and reports what happened.
// Spawns made between ticks are reported by the next tick.
func (w *World) Tick(in Input) TickReport {
	w.waveCleared = false
	w.tick++
	w.elapsed += w.dt

	if w.player != nil {
		w.movePlayer(in)
		w.updateEnergy(in)
		w.castAbility(in)
		w.animatePlayer()
	} else if !w.warnedNoPlayer {
		w.warnedNoPlayer = true
		w.logger.Warn("no player; skipping player stages", "tick", w.tick)
	}

	w.updateEnemies()
	w.moveProjectiles()
	w.collideProjectiles()
	w.expireProjectiles()
	w.contactDamage()
	w.resolveDamage()
	w.awardExperience()
	w.advanceWaves()

	report := TickReport{
		Tick:        w.tick,
		Elapsed:     w.elapsed,
		Events:      w.events.clone(),
		Wave:        w.wave,
		WaveCleared: w.waveCleared,
		Cleared:     w.cleared,
	}
	w.events.reset()
	return report
}

// Player returns the player if it is alive.
func (w *World) Player() (*Player, bool) {
	return w.player, w.player != nil
}

// Enemy returns a live enemy.
func (w *World) Enemy(id EntityID) (*Enemy, bool) {
	return w.enemies.Get(id)
}

// Enemies returns live enemies in arena order.
func (w *World) Enemies() []*Enemy {
	return w.enemies.Items()
}

// Projectiles returns live projectiles in arena order.
func (w *World) Projectiles() []*Projectile {
	return w.projectiles.Items()
}

// Decorations returns live decorations in arena order.
func (w *World) Decorations() []*Decoration {
	return w.decorations.Items()
}

// Ticks returns the number of ticks run.
func (w *World) Ticks() uint64 { return w.tick }

// Elapsed returns simulated seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// TickSeconds returns the fixed step.
func (w *World) TickSeconds() float64 { return w.dt }

// Bounds returns the arena bounds.
func (w *World) Bounds() Bounds { return w.bounds }

// Config returns the configuration the world was built with.
func (w *World) Config() config.NbolConfig { return w.cfg }

// Stats returns running totals.
func (w *World) Stats() Stats { return w.stats }

// Wave returns the zero-based wave in progress.
func (w *World) Wave() int { return w.wave }

// Cleared reports whether a wave-limited world has run out of waves.
func (w *World) Cleared() bool { return w.cleared }
