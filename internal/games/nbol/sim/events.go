package sim

// DamageIntent is a request to damage a target. It is produced by
// projectile collisions and contact and consumed by damage resolution
// in the same tick.
type DamageIntent struct {
	Source EntityID
	Target EntityID
	Damage float64
	Crit   CriticalHit
}

// DisplayDamage describes a damage number for presentation.
type DisplayDamage struct {
	Target   EntityID
	Amount   float64 // rounded
	Position Vec3
	IsCrit   bool
}

// HealthChanged reports a health change. Current is clamped to >= 0.
type HealthChanged struct {
	Entity  EntityID
	Max     float64
	Current float64
}

// Defeated is emitted exactly once when a combatant's health is depleted.
type Defeated struct {
	Entity   EntityID
	Kind     Kind
	Level    uint32
	Position Vec3
	Name     string
}

// LevelUp reports the player's new level.
type LevelUp struct {
	Level uint32
}

// Spawned reports an entity added to the world.
type Spawned struct {
	Entity EntityID
	Kind   Kind
}

// ProjectileExpired reports a projectile removed by its lifetime timer.
type ProjectileExpired struct {
	Projectile EntityID
	Position   Vec3
}

// Events holds one queue per event kind. Every event is produced and
// consumed within one tick; the queues are emptied once the tick reports.
type Events struct {
	Intents       []DamageIntent
	Damage        []DisplayDamage
	HealthChanges []HealthChanged
	Defeats       []Defeated
	LevelUps      []LevelUp
	Spawns        []Spawned
	Expired       []ProjectileExpired
}

func (e *Events) reset() {
	e.Intents = e.Intents[:0]
	e.Damage = e.Damage[:0]
	e.HealthChanges = e.HealthChanges[:0]
	e.Defeats = e.Defeats[:0]
	e.LevelUps = e.LevelUps[:0]
	e.Spawns = e.Spawns[:0]
	e.Expired = e.Expired[:0]
}

// clone copies the queues so a report does not alias reused buffers.
func (e *Events) clone() Events {
	return Events{
		Intents:       append([]DamageIntent(nil), e.Intents...),
		Damage:        append([]DisplayDamage(nil), e.Damage...),
		HealthChanges: append([]HealthChanged(nil), e.HealthChanges...),
		Defeats:       append([]Defeated(nil), e.Defeats...),
		LevelUps:      append([]LevelUp(nil), e.LevelUps...),
		Spawns:        append([]Spawned(nil), e.Spawns...),
		Expired:       append([]ProjectileExpired(nil), e.Expired...),
	}
}

// TickReport is what a single tick produced.
type TickReport struct {
	Tick    uint64
	Elapsed float64
	Events  Events

	// Wave is the zero-based index of the wave in progress after the tick.
	Wave int
	// WaveCleared is set on the tick the last enemy of a wave fell.
	WaveCleared bool
	// Cleared is set once a wave-limited world has run out of waves.
	Cleared bool
}

// PlayerDefeated reports whether the player fell during the tick.
func (r TickReport) PlayerDefeated() bool {
	for _, d := range r.Events.Defeats {
		if d.Kind == KindPlayer {
			return true
		}
	}
	return false
}
