package sim

// Facing is one of the four cardinal orientations.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns the string representation of a facing.
func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "Up"
	case FacingDown:
		return "Down"
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Unit returns the world-space unit vector for the facing.
func (f Facing) Unit() Vec3 {
	switch f {
	case FacingUp:
		return V(0, 1)
	case FacingDown:
		return V(0, -1)
	case FacingLeft:
		return V(-1, 0)
	case FacingRight:
		return V(1, 0)
	default:
		return Vec3{}
	}
}

// DeriveFacing picks the facing for a movement direction.
// The X axis wins only when |x| > |y| strictly; ties go to the Y axis.
// The sign of the winning component picks the direction, so a zero
// vector faces Down.
func DeriveFacing(d Vec3) Facing {
	ax, ay := d.X, d.Y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}

	if ax > ay {
		if d.X > 0 {
			return FacingRight
		}
		return FacingLeft
	}
	if d.Y > 0 {
		return FacingUp
	}
	return FacingDown
}
