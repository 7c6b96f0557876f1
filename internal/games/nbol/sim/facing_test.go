package sim

import "testing"

func TestDeriveFacing(t *testing.T) {
	tests := []struct {
		name string
		dir  Vec3
		want Facing
	}{
		{"right", V(3, 1), FacingRight},
		{"left", V(-3, 1), FacingLeft},
		{"up", V(1, 3), FacingUp},
		{"down", V(1, -3), FacingDown},
		{"tie goes to y up", V(2, 2), FacingUp},
		{"tie goes to y down", V(-2, -2), FacingDown},
		{"pure x", V(5, 0), FacingRight},
		{"pure y", V(0, -5), FacingDown},
		{"zero", V(0, 0), FacingDown},
		{"z ignored", Vec3{X: -1, Y: 0, Z: 100}, FacingLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveFacing(tt.dir); got != tt.want {
				t.Errorf("DeriveFacing(%v) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestDeriveFacingGrid(t *testing.T) {
	for x := -10; x <= 10; x++ {
		for y := -10; y <= 10; y++ {
			d := V(float64(x)*0.5, float64(y)*0.5)
			got := DeriveFacing(d)

			ax, ay := abs(d.X), abs(d.Y)
			var want Facing
			switch {
			case ax > ay && d.X > 0:
				want = FacingRight
			case ax > ay:
				want = FacingLeft
			case d.Y > 0:
				want = FacingUp
			default:
				want = FacingDown
			}
			if got != want {
				t.Fatalf("DeriveFacing(%v) = %v, want %v", d, got, want)
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestMoveTowardNeverOvershoots(t *testing.T) {
	start := V(0, 0)
	target := V(3, 4)

	if got := start.MoveToward(target, 10); got != target {
		t.Errorf("large step = %v, want %v", got, target)
	}
	got := start.MoveToward(target, 1)
	if !approx(got.X, 0.6) || !approx(got.Y, 0.8) {
		t.Errorf("unit step = %v, want (0.6, 0.8)", got)
	}
}

func TestBoundsClamp(t *testing.T) {
	b := CenteredBounds(10, 4)
	if b.MaxX != 5*TileSize || b.MinY != -2*TileSize {
		t.Fatalf("unexpected bounds %+v", b)
	}
	p := b.Clamp(V(1000, -1000))
	if p.X != b.MaxX || p.Y != b.MinY {
		t.Errorf("Clamp = %v", p)
	}
	if !b.Contains(p) {
		t.Error("clamped point should be inside bounds")
	}
}
