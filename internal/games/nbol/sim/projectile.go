package sim

// Projectile is a moving damage carrier spawned by a cast.
type Projectile struct {
	ID       EntityID
	Owner    EntityID
	Position Vec3
	Facing   Facing
	Speed    float64 // tiles per second
	Damage   float64
	Crit     CriticalHit
	TTL      Timer
}

// ProjectileDamage returns the damage of a cast by a caster of level.
func ProjectileDamage(base, levelBonus float64, level uint32, scaled bool) float64 {
	if !scaled {
		return base
	}
	return base + base*levelBonus*float64(level)
}

func (w *World) spawnProjectile(p *Player) {
	pc := w.cfg.Projectile
	proj := &Projectile{
		ID:       w.allocID(),
		Owner:    p.id,
		Position: p.pos,
		Facing:   p.facing,
		Speed:    pc.Speed,
		Damage:   ProjectileDamage(pc.BaseDamage, pc.LevelBonus, p.Progress.Level, pc.LevelScaling),
		Crit:     CriticalHit{Chance: pc.Crit.Chance, Multiplier: pc.Crit.Multiplier},
		TTL:      NewTimer(pc.TTL),
	}
	w.projectiles.Add(proj.ID, proj)
	w.events.Spawns = append(w.events.Spawns, Spawned{Entity: proj.ID, Kind: KindProjectile})
	w.stats.Casts++
}

func (w *World) moveProjectiles() {
	w.projectiles.Each(func(_ EntityID, pr *Projectile) bool {
		pr.Position = pr.Position.Add(pr.Facing.Unit().Scale(pr.Speed * TileSize * w.dt))
		return true
	})
}

// collideProjectiles hits the first enemy in arena order within the hit
// radius. A projectile damages at most one enemy and despawns on hit.
func (w *World) collideProjectiles() {
	radius := w.cfg.Projectile.HitRadius * TileSize
	var hit []EntityID

	w.projectiles.Each(func(pid EntityID, pr *Projectile) bool {
		w.enemies.Each(func(eid EntityID, e *Enemy) bool {
			if pr.Position.Distance(e.pos) >= radius {
				return true
			}
			hit = append(hit, pid)
			w.events.Intents = append(w.events.Intents, DamageIntent{
				Source: pr.Owner,
				Target: eid,
				Damage: pr.Damage,
				Crit:   pr.Crit,
			})
			return false
		})
		return true
	})

	for _, id := range hit {
		w.projectiles.Remove(id)
	}
}

// expireProjectiles removes projectiles whose lifetime ran out.
func (w *World) expireProjectiles() {
	var expired []EntityID
	w.projectiles.Each(func(id EntityID, pr *Projectile) bool {
		if pr.TTL.Tick(w.dt) {
			expired = append(expired, id)
			w.events.Expired = append(w.events.Expired, ProjectileExpired{Projectile: id, Position: pr.Position})
		}
		return true
	})
	for _, id := range expired {
		w.projectiles.Remove(id)
	}
}
