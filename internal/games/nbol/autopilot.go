package nbol

import (
	"math"

	"github.com/vovakirdan/nbol/internal/core"
	"github.com/vovakirdan/nbol/internal/games/nbol/sim"
)

// Autopilot plays a game without a human: it lines up with the nearest
// enemy on one axis, turns to face it and casts. It drives headless runs
// and attract-mode demos.
type Autopilot struct {
	// AlignTolerance is how far off-axis, in world units, still counts as lined up.
	AlignTolerance float64
	// KeepAway is the distance at which the autopilot backs off instead of casting.
	KeepAway float64
	// BoostDistance is the distance beyond which it boosts when energy allows.
	BoostDistance float64
}

// NewAutopilot creates an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		AlignTolerance: sim.TileSize / 4,
		KeepAway:       sim.TileSize,
		BoostDistance:  sim.TileSize * 8,
	}
}

// Next returns the input for the next tick of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.gameOver || g.won {
		in.Set(core.ActionRestart)
		return in
	}

	w := g.World()
	p, ok := w.Player()
	if !ok {
		return in
	}
	target, ok := nearestEnemy(w, p.Position())
	if !ok {
		return in
	}

	delta := target.Position().Sub(p.Position())
	dist := delta.Len()
	ax, ay := math.Abs(delta.X), math.Abs(delta.Y)

	if dist < a.KeepAway {
		// Step away along the axis the enemy is closest on.
		a.press(&in, sim.DeriveFacing(delta.Scale(-1)))
		return in
	}

	switch {
	case ax > a.AlignTolerance && ay > a.AlignTolerance:
		// Close the smaller gap to line up on the other axis.
		if ax < ay {
			a.press(&in, sim.DeriveFacing(sim.V(delta.X, 0)))
		} else {
			a.press(&in, sim.DeriveFacing(sim.V(0, delta.Y)))
		}
	default:
		want := sim.DeriveFacing(delta)
		if p.Facing() != want {
			a.press(&in, want)
		} else {
			in.Set(core.ActionCast)
		}
	}

	if dist > a.BoostDistance && p.Energy > 0 {
		in.Set(core.ActionBoost)
	}
	return in
}

func (a *Autopilot) press(in *core.InputFrame, f sim.Facing) {
	switch f {
	case sim.FacingUp:
		in.Set(core.ActionUp)
	case sim.FacingDown:
		in.Set(core.ActionDown)
	case sim.FacingLeft:
		in.Set(core.ActionLeft)
	case sim.FacingRight:
		in.Set(core.ActionRight)
	}
}

func nearestEnemy(w *sim.World, from sim.Vec3) (*sim.Enemy, bool) {
	var best *sim.Enemy
	bestDist := math.Inf(1)
	for _, e := range w.Enemies() {
		if d := e.Position().Distance(from); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}
