package rendering

import "math"

// RotatedAroundDegrees rotates o about center by the given angle in degrees.
// Positive angles rotate clockwise in the y-down coordinate system.
func (o Offset) RotatedAroundDegrees(center Offset, degrees float64) Offset {
	deg := math.Mod(degrees, 360)
	if deg < 0 {
		deg += 360
	}
	// Quarter turns are exact so that 0 is the identity and 180 is a clean flip.
	switch deg {
	case 0:
		return o
	case 90:
		return rotateBy(o, center, 1, 0)
	case 180:
		return rotateBy(o, center, 0, -1)
	case 270:
		return rotateBy(o, center, -1, 0)
	}
	return o.RotatedAroundRadians(center, deg*math.Pi/180)
}

// RotatedAroundRadians rotates o about center by the given angle in radians.
// Positive angles rotate clockwise in the y-down coordinate system.
func (o Offset) RotatedAroundRadians(center Offset, radians float64) Offset {
	if radians == 0 {
		return o
	}
	sin, cos := math.Sincos(radians)
	return rotateBy(o, center, sin, cos)
}

func rotateBy(o, center Offset, sin, cos float64) Offset {
	dx := o.X - center.X
	dy := o.Y - center.Y
	return Offset{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}
