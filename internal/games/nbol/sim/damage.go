package sim

import (
	"math"
	"math/rand"
)

// Resolver rolls critical hits from the world's seeded source.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Roll returns damage after a critical roll. A zero chance consumes no
// random draw; otherwise exactly one draw is made and a value <= chance
// crits.
func (r *Resolver) Roll(damage float64, crit CriticalHit) float64 {
	if crit.Chance <= 0 {
		return damage
	}
	if r.rng.Float64() <= crit.Chance {
		return damage * crit.Multiplier
	}
	return damage
}

// combatant looks up a live damage target.
func (w *World) combatant(id EntityID) (Combatant, bool) {
	if w.player != nil && w.player.id == id {
		return w.player, true
	}
	if e, ok := w.enemies.Get(id); ok {
		return e, true
	}
	return nil, false
}

// resolveDamage applies every pending intent in order. Intents against
// entities destroyed earlier in the tick are dropped.
func (w *World) resolveDamage() {
	for _, in := range w.events.Intents {
		w.resolve(in)
	}
}

func (w *World) resolve(in DamageIntent) {
	target, ok := w.combatant(in.Target)
	if !ok {
		return
	}

	final := w.resolver.Roll(in.Damage, in.Crit)
	isCrit := final != in.Damage
	h := target.Health()
	h.Apply(final)
	if isCrit {
		w.stats.Crits++
	}

	w.events.Damage = append(w.events.Damage, DisplayDamage{
		Target:   in.Target,
		Amount:   math.Round(final),
		Position: target.Position(),
		IsCrit:   isCrit,
	})
	w.events.HealthChanges = append(w.events.HealthChanges, HealthChanged{
		Entity:  in.Target,
		Max:     h.Max(),
		Current: h.Clamped(),
	})

	if !h.Depleted() {
		if e, ok := target.(*Enemy); ok {
			e.provoke()
		}
		return
	}

	d := Defeated{Entity: in.Target, Kind: target.Kind(), Position: target.Position()}
	switch t := target.(type) {
	case *Enemy:
		d.Level = t.Level
		d.Name = t.Name
	case *Player:
		d.Level = t.Level()
	}
	w.events.Defeats = append(w.events.Defeats, d)
	w.logger.Debug("defeated", "entity", in.Target, "kind", d.Kind, "name", d.Name, "tick", w.tick)
	w.destroy(in.Target)
}

// destroy removes an entity and every decoration it owns.
func (w *World) destroy(id EntityID) {
	var owned []EntityID
	w.decorations.Each(func(did EntityID, d *Decoration) bool {
		if d.Owner == id {
			owned = append(owned, did)
		}
		return true
	})
	for _, did := range owned {
		w.decorations.Remove(did)
	}

	if w.player != nil && w.player.id == id {
		w.player = nil
		return
	}
	if w.enemies.Remove(id) {
		w.stats.Kills++
		return
	}
	w.projectiles.Remove(id)
}

// awardExperience grants experience to the player for each enemy defeat.
func (w *World) awardExperience() {
	p := w.player
	if p == nil {
		return
	}
	xc := w.cfg.Experience
	for _, d := range w.events.Defeats {
		if d.Kind != KindEnemy {
			continue
		}
		amount := xc.Award
		if xc.ScaleByLevel {
			amount *= float64(d.Level)
		}
		w.stats.XPEarned += amount
		if p.Progress.Award(amount) {
			w.events.LevelUps = append(w.events.LevelUps, LevelUp{Level: p.Progress.Level})
			w.logger.Debug("level up", "level", p.Progress.Level, "tick", w.tick)
		}
	}
}
