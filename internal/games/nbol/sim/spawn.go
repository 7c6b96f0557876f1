package sim

import (
	"errors"
	"fmt"
)

// ErrPlayerExists is returned when a second player is spawned.
var ErrPlayerExists = errors.New("sim: player already exists")

// randomPlacementAttempts bounds the search for a spawn point far enough
// from the player.
const randomPlacementAttempts = 16

// EnemySpawn describes one enemy. Zero fields take their configured base
// value.
type EnemySpawn struct {
	Position Vec3
	Facing   Facing
	Name     string
	Health   float64
	Speed    float64
	Level    uint32
}

// SpawnPlayer creates the player at pos with configured base stats.
func (w *World) SpawnPlayer(pos Vec3) (EntityID, error) {
	if w.player != nil {
		return NoEntity, fmt.Errorf("spawn player: %w", ErrPlayerExists)
	}

	pc := w.cfg.Player
	p := &Player{
		id:       w.allocID(),
		pos:      w.bounds.Clamp(pos),
		facing:   FacingDown,
		health:   NewHealth(pc.Health),
		Speed:    pc.Speed,
		Energy:   pc.EnergyMax,
		State:    StateIdle,
		Progress: NewProgression(Curve{Base: w.cfg.Experience.Base, Multiplier: w.cfg.Experience.Multiplier}),
		Damage:   pc.Damage,
		Crit:     CriticalHit{Chance: pc.Crit.Chance, Multiplier: pc.Crit.Multiplier},
		Anim:     NewAnimation(WalkFrames, WalkFrameTime),
	}
	w.player = p
	w.warnedNoPlayer = false
	w.events.Spawns = append(w.events.Spawns, Spawned{Entity: p.id, Kind: KindPlayer})
	w.logger.Debug("player spawned", "entity", p.id, "x", p.pos.X, "y", p.pos.Y)
	return p.id, nil
}

// SpawnEnemy creates one enemy anchored at its spawn position together with
// its nameplate and health bar.
func (w *World) SpawnEnemy(s EnemySpawn) EntityID {
	ec := w.cfg.Enemy
	if s.Health <= 0 {
		s.Health = ec.Health
	}
	if s.Speed <= 0 {
		s.Speed = ec.Speed
	}
	if s.Level == 0 {
		s.Level = ec.Level
	}
	if s.Name == "" {
		s.Name = "Enemy"
	}

	anim := NewAnimation(WalkFrames, WalkFrameTime)
	anim.Paused = true
	e := &Enemy{
		id:         w.allocID(),
		pos:        s.Position,
		facing:     s.Facing,
		health:     NewHealth(s.Health),
		anchor:     s.Position,
		Name:       s.Name,
		Speed:      s.Speed,
		Level:      s.Level,
		AggroRange: ec.AggroRange * TileSize,
		Damage:     ec.Damage,
		Crit:       CriticalHit{Chance: ec.Crit.Chance, Multiplier: ec.Crit.Multiplier},
		Anim:       anim,
		sinceHit:   ec.AggroMemory,
		contact:    Timer{Duration: ec.ContactCooldown, Elapsed: ec.ContactCooldown},
	}
	w.enemies.Add(e.id, e)
	w.events.Spawns = append(w.events.Spawns, Spawned{Entity: e.id, Kind: KindEnemy})

	w.attach(e.id, DecorationNameplate, V(0, TileSize*0.75))
	w.attach(e.id, DecorationHealthBar, V(0, TileSize*0.5))
	return e.id
}

func (w *World) attach(owner EntityID, kind DecorationKind, offset Vec3) {
	d := &Decoration{ID: w.allocID(), Owner: owner, Kind: kind, Offset: offset}
	w.decorations.Add(d.ID, d)
	w.events.Spawns = append(w.events.Spawns, Spawned{Entity: d.ID, Kind: KindDecoration})
}

// SpawnEnemyBurst spawns n enemies for the zero-based wave. Configured
// positions are used in order; the rest are placed at seeded random points
// inside the bounds away from the player. Health and speed scale with the
// wave difficulty.
func (w *World) SpawnEnemyBurst(n, wave int) []EntityID {
	ec := w.cfg.Enemy
	score := int(w.stats.XPEarned)
	health := w.difficulty.Health(ec.Health, wave, score)
	speed := w.difficulty.Speed(ec.Speed, wave, score)

	ids := make([]EntityID, 0, n)
	for i := 0; i < n; i++ {
		var pos Vec3
		if i < len(ec.Positions) {
			pos = w.bounds.Clamp(Tiles(ec.Positions[i].X, ec.Positions[i].Y))
		} else {
			pos = w.randomSpawnPoint()
		}

		name := "Enemy"
		if len(ec.Names) > 0 {
			name = ec.Names[w.rng.Intn(len(ec.Names))]
		}

		ids = append(ids, w.SpawnEnemy(EnemySpawn{
			Position: pos,
			Facing:   Facing(w.rng.Intn(4)),
			Name:     name,
			Health:   health,
			Speed:    speed,
			Level:    ec.Level + uint32(wave),
		}))
	}

	w.logger.Debug("enemy burst", "wave", wave, "count", n, "health", health, "speed", speed)
	return ids
}

// SpawnWave starts the next wave with a difficulty-scaled burst.
func (w *World) SpawnWave() []EntityID {
	n := w.difficulty.Count(w.cfg.Enemy.Count, w.wave, int(w.stats.XPEarned))
	if n < 1 {
		n = 1
	}
	ids := w.SpawnEnemyBurst(n, w.wave)
	w.waveActive = true
	return ids
}

func (w *World) randomSpawnPoint() Vec3 {
	b := w.bounds
	minDist := w.cfg.Enemy.SpawnMinDistance * TileSize

	var pos Vec3
	for range randomPlacementAttempts {
		pos = V(
			b.MinX+w.rng.Float64()*(b.MaxX-b.MinX),
			b.MinY+w.rng.Float64()*(b.MaxY-b.MinY),
		)
		if w.player == nil || pos.Distance(w.player.pos) >= minDist {
			break
		}
	}
	return pos
}

// advanceWaves spawns the next wave one tick after the previous one was
// cleared, until a wave limit is reached.
func (w *World) advanceWaves() {
	if w.pendingWave {
		w.pendingWave = false
		w.wave++
		w.SpawnWave()
		return
	}
	if !w.waveActive || w.enemies.Len() > 0 {
		return
	}

	w.waveActive = false
	w.waveCleared = true
	w.stats.WavesCleared++
	w.logger.Debug("wave cleared", "wave", w.wave, "tick", w.tick)

	if w.waveLimit > 0 && w.stats.WavesCleared >= w.waveLimit {
		w.cleared = true
		return
	}
	w.pendingWave = true
}
