package sim

// contactDamage trades blows between the player and every enemy touching
// it whose contact cooldown has elapsed.
func (w *World) contactDamage() {
	p := w.player
	if p == nil {
		return
	}
	radius := w.cfg.Enemy.ContactRadius * TileSize

	w.enemies.Each(func(eid EntityID, e *Enemy) bool {
		if !e.contact.Finished() || e.pos.Distance(p.pos) > radius {
			return true
		}
		if e.Damage > 0 {
			w.events.Intents = append(w.events.Intents, DamageIntent{
				Source: eid, Target: p.id, Damage: e.Damage, Crit: e.Crit,
			})
		}
		if p.Damage > 0 {
			w.events.Intents = append(w.events.Intents, DamageIntent{
				Source: p.id, Target: eid, Damage: p.Damage, Crit: p.Crit,
			})
		}
		e.contact.Restart()
		return true
	})
}
