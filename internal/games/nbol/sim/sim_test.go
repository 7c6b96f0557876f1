package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/nbol/internal/config"
)

// testConfig returns defaults with every random element that tests do not
// exercise switched off.
func testConfig() config.NbolConfig {
	cfg := config.DefaultNbolConfig()
	cfg.Difficulty.Enabled = false
	cfg.Player.Crit.Chance = 0
	cfg.Enemy.Crit.Chance = 0
	cfg.Projectile.Crit.Chance = 0
	return cfg
}

func newTestWorld(t *testing.T, cfg config.NbolConfig, opts ...Option) *World {
	t.Helper()
	return NewWorld(cfg, append([]Option{WithSeed(42)}, opts...)...)
}

func spawnTestPlayer(t *testing.T, w *World, pos Vec3) *Player {
	t.Helper()
	if _, err := w.SpawnPlayer(pos); err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}
	p, _ := w.Player()
	return p
}

// inject queues a damage intent that the next tick resolves.
func inject(w *World, target EntityID, damage float64) {
	w.events.Intents = append(w.events.Intents, DamageIntent{Target: target, Damage: damage})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
