package geom

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// RotatePoint rotates (x, y) about the origin by angleDeg degrees.
// Positive angles rotate counterclockwise.
func RotatePoint(x, y, angleDeg float64) (float64, float64) {
	sin, cos := math.Sincos(Radians(angleDeg))
	return x*cos - y*sin, x*sin + y*cos
}
