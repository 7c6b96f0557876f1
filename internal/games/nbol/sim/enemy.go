package sim

// Behavior is the branch an enemy took on its last tick.
type Behavior uint8

const (
	BehaviorIdle Behavior = iota
	BehaviorChasing
	BehaviorReturning
)

// String returns the string representation of a behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorIdle:
		return "Idle"
	case BehaviorChasing:
		return "Chasing"
	case BehaviorReturning:
		return "Returning"
	default:
		return "Unknown"
	}
}

// Enemy is an AI-driven combatant tethered to its spawn anchor.
type Enemy struct {
	id     EntityID
	pos    Vec3
	facing Facing
	health Health
	anchor Vec3

	Name       string
	Speed      float64 // tiles per second
	Level      uint32
	AggroRange float64 // world units
	Aggro      bool
	Moving     bool
	Behavior   Behavior
	Damage     float64 // dealt on contact
	Crit       CriticalHit
	Anim       Animation

	sinceHit float64
	contact  Timer
}

func (e *Enemy) ID() EntityID { return e.id }
func (e *Enemy) Kind() Kind { return KindEnemy }
func (e *Enemy) Health() *Health { return &e.health }
func (e *Enemy) Position() Vec3 { return e.pos }
func (e *Enemy) Facing() Facing { return e.facing }

// Anchor returns the immutable spawn position.
func (e *Enemy) Anchor() Vec3 { return e.anchor }

// SetPosition moves the enemy without touching its anchor.
func (e *Enemy) SetPosition(v Vec3) { e.pos = v }

// provoke marks the enemy as recently hit.
func (e *Enemy) provoke() {
	e.Aggro = true
	e.sinceHit = 0
}

// pursue moves toward target by step, facing along the travel direction.
func (e *Enemy) pursue(target Vec3, step, memory float64) {
	e.facing = DeriveFacing(target.Sub(e.pos))
	e.pos = e.pos.MoveToward(target, step)
	e.Moving = true
	e.Anim.Paused = false
	if e.sinceHit >= memory {
		e.Aggro = false
	}
}

// updateEnemies runs the chase/return/idle decision for every enemy.
func (w *World) updateEnemies() {
	var target Vec3
	hasPlayer := w.player != nil
	if hasPlayer {
		target = w.player.pos
	}

	ec := w.cfg.Enemy
	w.enemies.Each(func(_ EntityID, e *Enemy) bool {
		e.sinceHit += w.dt

		radius := e.AggroRange
		if e.Aggro {
			radius *= ec.AggroBoost
		}

		switch {
		case hasPlayer && e.pos.Distance(target) <= radius:
			e.Behavior = BehaviorChasing
			e.pursue(target, e.Speed*TileSize*w.dt, ec.AggroMemory)
		case e.pos.Distance(e.anchor) > ec.ReturnThreshold:
			e.Behavior = BehaviorReturning
			e.pursue(e.anchor, e.Speed*ec.ReturnMultiplier*TileSize*w.dt, ec.AggroMemory)
		default:
			e.Behavior = BehaviorIdle
			e.Moving = false
			e.facing = FacingDown
			e.Anim.Paused = true
		}

		e.Anim.Advance(w.dt)
		e.contact.Tick(w.dt)
		return true
	})
}
