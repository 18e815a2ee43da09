package dxf

import (
	"strings"

	"github.com/bft-labs/minidxf/pkg/geom"
)

// Line is a straight segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Layer  string
}

// Kind returns KindLine.
func (l *Line) Kind() Kind { return KindLine }

// DXF returns the LINE record.
func (l *Line) DXF() string {
	var b strings.Builder
	writeGroup(&b, 0, string(KindLine))
	writeGroup(&b, 8, l.Layer)
	writeFloat(&b, 10, l.X1)
	writeFloat(&b, 20, l.Y1)
	writeGroup(&b, 30, "0.0")
	writeFloat(&b, 11, l.X2)
	writeFloat(&b, 21, l.Y2)
	writeGroup(&b, 31, "0.0")
	return b.String()
}

// BoundingBox returns the box spanned by the two endpoints.
func (l *Line) BoundingBox() geom.BBox {
	return geom.BBoxOf([]float64{l.X1, l.X2}, []float64{l.Y1, l.Y2})
}

// Translate shifts both endpoints.
func (l *Line) Translate(dx, dy float64) {
	l.X1 += dx
	l.Y1 += dy
	l.X2 += dx
	l.Y2 += dy
}

// Rotate rotates both endpoints about the origin.
func (l *Line) Rotate(angleDeg float64) {
	l.X1, l.Y1 = geom.RotatePoint(l.X1, l.Y1, angleDeg)
	l.X2, l.Y2 = geom.RotatePoint(l.X2, l.Y2, angleDeg)
}

func (l *Line) clone() Entity {
	c := *l
	return &c
}
