package sim

// Curve is the experience requirement per level.
type Curve struct {
	Base       float64
	Multiplier float64
}

// XPToNext returns the experience needed to leave level.
func (c Curve) XPToNext(level uint32) float64 {
	return c.Base * (c.Multiplier * float64(level))
}

// Progression is a combatant's level and experience toward the next level.
type Progression struct {
	Level uint32
	XP    float64
	curve Curve
}

// NewProgression starts at level 1 with no experience.
func NewProgression(c Curve) Progression {
	return Progression{Level: 1, curve: c}
}

// ToNext returns the threshold for the current level.
func (p Progression) ToNext() float64 {
	return p.curve.XPToNext(p.Level)
}

// Fraction returns progress toward the next level in [0, 1].
func (p Progression) Fraction() float64 {
	next := p.ToNext()
	if next <= 0 {
		return 0
	}
	f := p.XP / next
	if f > 1 {
		return 1
	}
	return f
}

// Award adds experience and reports a level-up. The threshold comes from the
// level before the award, at most one level is gained, and surplus
// experience is discarded.
func (p *Progression) Award(amount float64) bool {
	threshold := p.ToNext()
	p.XP += amount
	if p.XP < threshold {
		return false
	}
	p.Level++
	p.XP = 0
	return true
}
