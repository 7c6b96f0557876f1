package sim

// EntityID identifies an entity for the lifetime of a World. IDs are
// allocated monotonically and never reused.
type EntityID uint32

// NoEntity is the zero id, never allocated.
const NoEntity EntityID = 0

// Kind classifies entities.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindProjectile
	KindDecoration
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Combatant is anything that can be the target of damage.
type Combatant interface {
	ID() EntityID
	Kind() Kind
	Health() *Health
	Position() Vec3
	Facing() Facing
}

// CriticalHit is a chance in [0, 1] to multiply damage.
type CriticalHit struct {
	Chance     float64
	Multiplier float64
}

// DecorationKind selects what an attached decoration shows.
type DecorationKind uint8

const (
	DecorationNameplate DecorationKind = iota + 1
	DecorationHealthBar
)

// Decoration is a presentation element owned by another entity. It is
// removed together with its owner.
type Decoration struct {
	ID     EntityID
	Owner  EntityID
	Kind   DecorationKind
	Offset Vec3
}
