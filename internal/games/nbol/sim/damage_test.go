package sim

import (
	"math/rand"
	"testing"
)

func TestResolverZeroChanceDrawsNothing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := NewResolver(rng)

	for _, dmg := range []float64{0, 1, 35, 1234.5} {
		if got := r.Roll(dmg, CriticalHit{Chance: 0, Multiplier: 2}); got != dmg {
			t.Errorf("Roll(%v) = %v with zero chance", dmg, got)
		}
	}

	fresh := rand.New(rand.NewSource(7))
	if rng.Float64() != fresh.Float64() {
		t.Error("zero-chance rolls consumed random draws")
	}
}

func TestResolverDeterministic(t *testing.T) {
	crit := CriticalHit{Chance: 0.3, Multiplier: 2}
	a := NewResolver(rand.New(rand.NewSource(99)))
	b := NewResolver(rand.New(rand.NewSource(99)))

	crits := 0
	for i := 0; i < 200; i++ {
		x, y := a.Roll(10, crit), b.Roll(10, crit)
		if x != y {
			t.Fatalf("roll %d differs: %v vs %v", i, x, y)
		}
		if x == 20 {
			crits++
		}
	}
	if crits == 0 || crits == 200 {
		t.Errorf("crits = %d of 200, expected a mix", crits)
	}

	always := NewResolver(rand.New(rand.NewSource(1)))
	if got := always.Roll(10, CriticalHit{Chance: 1, Multiplier: 3}); got != 30 {
		t.Errorf("chance 1 roll = %v, want 30", got)
	}
}

func TestDamageDefeatsExactlyOnce(t *testing.T) {
	tests := []struct {
		name     string
		hits     []float64
		current  float64
		defeated bool
	}{
		{"glancing", []float64{10}, 90, false},
		{"two hits", []float64{40, 35}, 25, false},
		{"exact kill", []float64{100}, 0, true},
		{"overkill", []float64{1000}, 0, true},
		{"second lethal hit dropped", []float64{60, 60, 60}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, testConfig())
			id := w.SpawnEnemy(EnemySpawn{Position: Tiles(10, 10), Health: 100})

			for _, dmg := range tt.hits {
				inject(w, id, dmg)
			}
			w.resolveDamage()

			e, alive := w.Enemy(id)
			if alive == tt.defeated {
				t.Fatalf("alive = %v, want %v", alive, !tt.defeated)
			}
			if alive && e.Health().Current() != tt.current {
				t.Errorf("current = %v, want %v", e.Health().Current(), tt.current)
			}

			defeats := 0
			for _, d := range w.events.Defeats {
				if d.Entity == id {
					defeats++
				}
			}
			want := 0
			if tt.defeated {
				want = 1
			}
			if defeats != want {
				t.Errorf("defeat events = %d, want %d", defeats, want)
			}

			last := w.events.HealthChanges[len(w.events.HealthChanges)-1]
			if last.Current != tt.current || last.Max != 100 {
				t.Errorf("last HealthChanged = %+v, want current %v", last, tt.current)
			}
		})
	}
}

func TestDefeatRemovesDecorations(t *testing.T) {
	w := newTestWorld(t, testConfig())
	keep := w.SpawnEnemy(EnemySpawn{Position: Tiles(-5, 0)})
	kill := w.SpawnEnemy(EnemySpawn{Position: Tiles(5, 0)})
	if got := len(w.Decorations()); got != 4 {
		t.Fatalf("decorations = %d, want 4", got)
	}

	inject(w, kill, 1e6)
	w.resolveDamage()

	for _, d := range w.Decorations() {
		if d.Owner == kill {
			t.Errorf("decoration %d of defeated enemy survived", d.ID)
		}
	}
	if got := len(w.Decorations()); got != 2 {
		t.Errorf("decorations = %d, want 2", got)
	}
	if _, ok := w.Enemy(keep); !ok {
		t.Error("unrelated enemy removed")
	}
}

func TestDanglingIntentDropped(t *testing.T) {
	w := newTestWorld(t, testConfig())
	inject(w, EntityID(999), 50)
	w.resolveDamage()

	if len(w.events.Damage) != 0 || len(w.events.HealthChanges) != 0 {
		t.Error("intent against missing target produced events")
	}
}

func TestDisplayDamageRoundsAndFlagsCrits(t *testing.T) {
	w := newTestWorld(t, testConfig())
	id := w.SpawnEnemy(EnemySpawn{Position: Tiles(3, 3), Health: 500})

	w.events.Intents = append(w.events.Intents,
		DamageIntent{Target: id, Damage: 36.75},
		DamageIntent{Target: id, Damage: 10, Crit: CriticalHit{Chance: 1, Multiplier: 2}},
		DamageIntent{Target: id, Damage: 10, Crit: CriticalHit{Chance: 1, Multiplier: 1}},
	)
	w.resolveDamage()

	got := w.events.Damage
	if len(got) != 3 {
		t.Fatalf("display events = %d, want 3", len(got))
	}
	if got[0].Amount != 37 || got[0].IsCrit {
		t.Errorf("first = %+v, want 37 non-crit", got[0])
	}
	if got[1].Amount != 20 || !got[1].IsCrit {
		t.Errorf("second = %+v, want 20 crit", got[1])
	}
	// A multiplier of 1 leaves the damage unchanged, so it is not a crit.
	if got[2].IsCrit {
		t.Errorf("third = %+v, want non-crit", got[2])
	}
	if got[0].Position != Tiles(3, 3) {
		t.Errorf("position = %v", got[0].Position)
	}
}

func TestExperienceFromDefeats(t *testing.T) {
	tests := []struct {
		name      string
		scale     bool
		level     uint32
		kills     int
		wantLevel uint32
		wantXP    float64
	}{
		{"five flat kills", false, 1, 5, 1, 125},
		{"six flat kills level up", false, 1, 6, 2, 0},
		{"level scaled", true, 3, 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Experience.ScaleByLevel = tt.scale
			w := newTestWorld(t, cfg)
			p := spawnTestPlayer(t, w, Tiles(-15, -10))

			for i := 0; i < tt.kills; i++ {
				id := w.SpawnEnemy(EnemySpawn{Position: Tiles(float64(i), 8), Level: tt.level})
				inject(w, id, 1e6)
			}
			report := w.Tick(Input{})

			if p.Progress.Level != tt.wantLevel || p.Progress.XP != tt.wantXP {
				t.Errorf("got level %d xp %v, want level %d xp %v",
					p.Progress.Level, p.Progress.XP, tt.wantLevel, tt.wantXP)
			}
			levelUps := len(report.Events.LevelUps)
			if (tt.wantLevel > 1) != (levelUps == 1) {
				t.Errorf("level up events = %d", levelUps)
			}
		})
	}
}
