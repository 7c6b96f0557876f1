package sim

// Animation cycles for the player.
const (
	WalkFrames    = 9
	WalkFrameTime = 0.1
	CastFrames    = 7
	CastFrameTime = 0.05
)

// PlayerState is the player's action state.
type PlayerState uint8

const (
	StateIdle PlayerState = iota
	StateMoving
	StateCasting
)

// String returns the string representation of a player state.
func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateMoving:
		return "Moving"
	case StateCasting:
		return "Casting"
	default:
		return "Unknown"
	}
}

// Input is the player input sampled once per tick. Direction and Boost are
// held states; Cast is a press and fires on the tick it is set.
type Input struct {
	Up, Down, Left, Right bool
	Boost                 bool
	Cast                  bool
}

// Player is the single player-controlled combatant.
type Player struct {
	id     EntityID
	pos    Vec3
	facing Facing
	health Health

	Speed    float64 // tiles per second
	Energy   float64
	State    PlayerState
	Progress Progression
	Damage   float64 // dealt on contact
	Crit     CriticalHit
	Anim     Animation
}

func (p *Player) ID() EntityID { return p.id }
func (p *Player) Kind() Kind { return KindPlayer }
func (p *Player) Health() *Health { return &p.health }
func (p *Player) Position() Vec3 { return p.pos }
func (p *Player) Facing() Facing { return p.facing }
func (p *Player) Level() uint32 { return p.Progress.Level }
func (p *Player) SetPosition(v Vec3) { p.pos = v }

// SetFacing turns the player without moving.
func (p *Player) SetFacing(f Facing) { p.facing = f }

// movePlayer applies held direction input. The Y axis is applied first and
// a nonzero X delta overrides its facing.
func (w *World) movePlayer(in Input) {
	p := w.player
	if p.State == StateCasting {
		return
	}
	p.State = StateIdle

	modifier := 1.0
	if in.Boost && p.Energy > 0 {
		modifier = w.cfg.Player.BoostMultiplier
	}
	step := p.Speed * TileSize * w.dt * modifier

	var dy float64
	if in.Up {
		dy += step
	}
	if in.Down {
		dy -= step
	}
	if dy != 0 {
		p.State = StateMoving
		p.facing = DeriveFacing(V(0, dy))
		p.pos.Y += dy
	}

	var dx float64
	if in.Right {
		dx += step
	}
	if in.Left {
		dx -= step
	}
	if dx != 0 {
		p.State = StateMoving
		p.facing = DeriveFacing(V(dx, 0))
		p.pos.X += dx
	}

	p.pos = w.bounds.Clamp(p.pos)
}

// updateEnergy drains energy while boosting and regenerates it otherwise.
func (w *World) updateEnergy(in Input) {
	p := w.player
	if p.State == StateMoving && in.Boost {
		p.Energy -= w.cfg.Player.EnergyDrain * w.dt
		if p.Energy < 0 {
			p.Energy = 0
		}
		return
	}
	p.Energy += w.cfg.Player.EnergyRegen * w.dt
	if p.Energy > w.cfg.Player.EnergyMax {
		p.Energy = w.cfg.Player.EnergyMax
	}
}

// castAbility fires one projectile per press. Presses while casting are
// ignored.
func (w *World) castAbility(in Input) {
	p := w.player
	if !in.Cast || p.State == StateCasting {
		return
	}
	p.State = StateCasting
	p.Anim.Restart(CastFrames, CastFrameTime)
	w.spawnProjectile(p)
}

// animatePlayer advances the state's cycle; a completed cycle returns the
// player to Idle.
func (w *World) animatePlayer() {
	p := w.player
	switch p.State {
	case StateMoving:
		p.Anim.Configure(WalkFrames, WalkFrameTime)
	case StateCasting:
		p.Anim.Configure(CastFrames, CastFrameTime)
	default:
		p.Anim.Rewind()
		return
	}
	if p.Anim.Advance(w.dt) {
		p.State = StateIdle
	}
}
