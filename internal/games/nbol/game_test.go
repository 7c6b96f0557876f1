package nbol

import (
	"strings"
	"testing"

	"github.com/vovakirdan/nbol/internal/config"
	"github.com/vovakirdan/nbol/internal/core"
	"github.com/vovakirdan/nbol/internal/registry"
)

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// duelConfig is a one-wave arena with a single fragile enemy three tiles
// to the right of the player.
func duelConfig() config.NbolConfig {
	cfg := config.DefaultNbolConfig()
	cfg.Difficulty.Enabled = false
	cfg.Projectile.Crit.Chance = 0
	cfg.Enemy.Count = 1
	cfg.Enemy.Health = 1
	cfg.Enemy.Positions = []config.Point{{X: 3, Y: 0}}
	cfg.Waves.Count = 1
	return cfg
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"arena", "endless"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := New(), New()
	g1.Reset(runtimeConfig(12345))
	g2.Reset(runtimeConfig(12345))

	pilot := NewAutopilot()
	for i := 0; i < 1200; i++ {
		if g1.State().GameOver || g1.State().Won {
			break
		}
		g1.Step(pilot.Next(g1))
		g2.Step(pilot.Next(g2))
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestArenaClearedByAutopilot(t *testing.T) {
	g := New()
	g.ResetWithConfig(runtimeConfig(1), duelConfig())

	pilot := NewAutopilot()
	for i := 0; i < 300 && !g.State().Won; i++ {
		g.Step(pilot.Next(g))
	}

	st := g.State()
	if !st.Won || st.GameOver {
		t.Fatalf("state = %+v, want won", st)
	}
	if st.Score != 125 {
		t.Errorf("score = %d, want 125 (25 xp + 100 wave bonus)", st.Score)
	}

	sum := g.Summary()
	if sum.Outcome != OutcomeCleared || sum.Kills != 1 || sum.Waves != 1 {
		t.Errorf("summary = %+v", sum)
	}

	// Finished games ignore input until restarted.
	tick := g.Snapshot().Tick
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != tick {
		t.Error("finished game advanced")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	cfg := duelConfig()
	cfg.Player.Health = 1
	cfg.Enemy.Health = 100
	cfg.Enemy.Positions = []config.Point{{X: 0, Y: 0}}

	g := New()
	g.ResetWithConfig(runtimeConfig(3), cfg)
	g.Step(core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("player survived lethal contact")
	}
	if sum := g.Summary(); sum.Outcome != OutcomeDefeated || sum.Level != 1 {
		t.Errorf("summary = %+v", sum)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if g.State().GameOver {
		t.Error("restart did not reset the game")
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("tick after restart = %d, want 0", g.Snapshot().Tick)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New()
	g.ResetWithConfig(runtimeConfig(5), duelConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause not toggled")
	}

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Tick != 0 {
		t.Error("paused game advanced")
	}

	// The unpausing step runs a tick, like any other.
	g.Step(pause)
	g.Step(core.NewInputFrame())
	if g.State().Paused || g.Snapshot().Tick != 2 {
		t.Errorf("after unpause: paused=%v tick=%d", g.State().Paused, g.Snapshot().Tick)
	}
}

func TestDamagePopupsExpire(t *testing.T) {
	cfg := duelConfig()
	cfg.Enemy.Health = 1000
	cfg.Enemy.Positions = []config.Point{{X: 0, Y: 0}}

	g := New()
	g.ResetWithConfig(runtimeConfig(9), cfg)
	g.Step(core.NewInputFrame())
	if len(g.popups) == 0 {
		t.Fatal("contact damage produced no popups")
	}

	// 0.5s at 60 ticks per second, inside the 1s contact cooldown.
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.popups) != 0 {
		t.Errorf("popups after 0.5s = %d, want 0", len(g.popups))
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.ResetWithConfig(runtimeConfig(7), duelConfig())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"▼", "Ö", "Wave 1/1", "HP", "Lv 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen not reported")
	}
}

func TestSimInputMapping(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionBoost)
	in.Set(core.ActionCast)

	got := simInput(in)
	if !got.Up || !got.Boost || !got.Cast || got.Down || got.Left || got.Right {
		t.Errorf("simInput = %+v", got)
	}
}
