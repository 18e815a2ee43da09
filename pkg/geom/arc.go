package geom

import "math"

// collinearTolerance is the absolute determinant below which three points
// are treated as collinear.
const collinearTolerance = 1e-9

// ArcParams describes a circular arc swept counterclockwise from StartAngle
// to EndAngle.
type ArcParams struct {
	CX, CY     float64
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// ArcFromThreePoints returns the arc that starts at (x1, y1), ends at
// (x2, y2) and passes through (x3, y3).
//
// When the counterclockwise sweep from the first point to the second does not
// contain the third, start and end are swapped so the returned sweep is
// counterclockwise and still passes through (x3, y3).
func ArcFromThreePoints(x1, y1, x2, y2, x3, y3 float64) (ArcParams, error) {
	det := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(det) < collinearTolerance {
		return ArcParams{}, ErrCollinearPoints
	}

	a := x1*x1 + y1*y1
	b := x2*x2 + y2*y2
	c := x3*x3 + y3*y3

	cx := (a*(y2-y3) + b*(y3-y1) + c*(y1-y2)) / det
	cy := (a*(x3-x2) + b*(x1-x3) + c*(x2-x1)) / det

	start := Degrees(math.Atan2(y1-cy, x1-cx))
	mid := Degrees(math.Atan2(y3-cy, x3-cx))
	end := Degrees(math.Atan2(y2-cy, x2-cx))

	if !strictlyBetween(start, mid, end) {
		start, end = end, start
	}

	return ArcParams{
		CX:         cx,
		CY:         cy,
		Radius:     math.Hypot(cx-x1, cy-y1),
		StartAngle: start,
		EndAngle:   end,
	}, nil
}

// AngleInArc reports whether angle lies on the closed counterclockwise sweep
// from start to end. Sweeps that cross 0° (e.g. 300° to 45°) are handled.
func AngleInArc(angle, start, end float64) bool {
	a1 := NormalizeAngle(start)
	a2 := NormalizeAngle(end)
	a := NormalizeAngle(angle)

	if a1 <= a2 {
		return a1 <= a && a <= a2
	}
	return a >= a1 || a <= a2
}

// NormalizeAngle maps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-15 + 360 rounds to 360
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// strictlyBetween reports whether mid lies strictly inside the open
// counterclockwise sweep from start to end.
func strictlyBetween(start, mid, end float64) bool {
	s := NormalizeAngle(start)
	m := NormalizeAngle(mid)
	e := NormalizeAngle(end)

	if s < e {
		return s < m && m < e
	}
	return m > s || m < e
}
