package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 20, 4)
	if r != NewRect(30, 10, 20, 4) {
		t.Errorf("CenteredRect = %+v, expected {30 10 20 4}", r)
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"shrinks each side", NewRect(0, 0, 10, 6), 1, NewRect(1, 1, 8, 4)},
		{"never negative", NewRect(2, 2, 3, 3), 2, NewRect(4, 4, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionCast)

	if !f.Has(ActionUp) || !f.Has(ActionCast) {
		t.Fatal("expected Up and Cast to be set")
	}
	if f.Has(ActionBoost) {
		t.Error("Boost should not be set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should reset actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestTickSeconds(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 30}).TickSeconds(); got != 1.0/30.0 {
		t.Errorf("TickSeconds() = %f, expected 1/30", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 1.0/60.0 {
		t.Errorf("zero TickRate should default to 1/60, got %f", got)
	}
}
