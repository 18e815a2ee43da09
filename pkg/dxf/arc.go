package dxf

import (
	"math"
	"strings"

	"github.com/bft-labs/minidxf/pkg/geom"
)

// cardinalAngles are where a circle reaches its extreme x or y.
var cardinalAngles = [...]float64{0, 90, 180, 270}

// Arc is a circular arc swept counterclockwise from StartAngle to EndAngle.
// Angles are in degrees and are not normalized.
type Arc struct {
	CX, CY     float64
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Layer      string
}

// Kind returns KindArc.
func (a *Arc) Kind() Kind { return KindArc }

// DXF returns the ARC record.
func (a *Arc) DXF() string {
	var b strings.Builder
	writeGroup(&b, 0, string(KindArc))
	writeGroup(&b, 8, a.Layer)
	writeFloat(&b, 10, a.CX)
	writeFloat(&b, 20, a.CY)
	writeGroup(&b, 30, "0.0")
	writeFloat(&b, 40, a.Radius)
	writeFloat(&b, 50, a.StartAngle)
	writeFloat(&b, 51, a.EndAngle)
	return b.String()
}

// BoundingBox returns the tight box around the swept arc. The extremes lie
// at the two endpoints or at whichever cardinal angles the sweep contains.
func (a *Arc) BoundingBox() geom.BBox {
	angles := make([]float64, 0, 2+len(cardinalAngles))
	angles = append(angles, a.StartAngle, a.EndAngle)
	for _, c := range cardinalAngles {
		if geom.AngleInArc(c, a.StartAngle, a.EndAngle) {
			angles = append(angles, c)
		}
	}

	xs := make([]float64, len(angles))
	ys := make([]float64, len(angles))
	for i, ang := range angles {
		sin, cos := math.Sincos(geom.Radians(ang))
		xs[i] = a.CX + a.Radius*cos
		ys[i] = a.CY + a.Radius*sin
	}
	return geom.BBoxOf(xs, ys)
}

// Translate moves the center.
func (a *Arc) Translate(dx, dy float64) {
	a.CX += dx
	a.CY += dy
}

// Rotate rotates the center about the origin and turns the sweep by the
// same angle.
func (a *Arc) Rotate(angleDeg float64) {
	a.CX, a.CY = geom.RotatePoint(a.CX, a.CY, angleDeg)
	a.StartAngle += angleDeg
	a.EndAngle += angleDeg
}

func (a *Arc) clone() Entity {
	c := *a
	return &c
}
