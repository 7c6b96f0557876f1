package sim

import "math"

// Health tracks hit points. Current may go negative after lethal damage;
// every observer sees it through Clamped or Percent.
type Health struct {
	current float64
	max     float64
}

// NewHealth creates full health. max must be positive.
func NewHealth(max float64) Health {
	if max <= 0 {
		panic("sim: health max must be positive")
	}
	return Health{current: max, max: max}
}

// Apply subtracts damage without clamping.
func (h *Health) Apply(damage float64) {
	h.current -= damage
}

// Current returns the raw, possibly negative, value.
func (h Health) Current() float64 { return h.current }

// Max returns the maximum.
func (h Health) Max() float64 { return h.max }

// Clamped returns current limited to [0, max].
func (h Health) Clamped() float64 {
	return math.Max(0, math.Min(h.max, h.current))
}

// Percent returns the clamped fraction of max in [0, 1].
func (h Health) Percent() float64 {
	return h.Clamped() / h.max
}

// Depleted reports whether the entity is dead.
func (h Health) Depleted() bool {
	return h.current <= 0
}
