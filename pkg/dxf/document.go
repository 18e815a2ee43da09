package dxf

import (
	"fmt"
	"io"

	"github.com/bft-labs/minidxf/pkg/geom"
)

// Document is an ordered collection of entities plus a unit setting.
// Entity order is draw order and is preserved by every operation.
type Document struct {
	units    Units
	entities []Entity
}

// NewDocument creates an empty document. units must be "mm" or "inch".
func NewDocument(units string) (*Document, error) {
	u, err := ParseUnits(units)
	if err != nil {
		return nil, err
	}
	return &Document{units: u}, nil
}

// Units returns the document unit.
func (d *Document) Units() Units {
	return d.units
}

// Len returns the number of entities.
func (d *Document) Len() int {
	return len(d.entities)
}

// Entities returns copies of the entities in draw order. Mutating the
// returned values does not affect the document.
func (d *Document) Entities() []Entity {
	out := make([]Entity, len(d.entities))
	for i, e := range d.entities {
		out[i] = e.clone()
	}
	return out
}

// Line appends a line from (x1, y1) to (x2, y2).
func (d *Document) Line(x1, y1, x2, y2 float64, opts ...EntityOption) *Document {
	o := applyEntityOptions(opts)
	d.entities = append(d.entities, &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Layer: o.layer})
	return d
}

// Arc appends an arc centered at (cx, cy). The arc sweeps counterclockwise
// from startAngle to endAngle (degrees). The angles are stored as given:
// unlike Arc3Points, no reordering is done.
func (d *Document) Arc(cx, cy, radius, startAngle, endAngle float64, opts ...EntityOption) *Document {
	o := applyEntityOptions(opts)
	d.entities = append(d.entities, &Arc{
		CX:         cx,
		CY:         cy,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Layer:      o.layer,
	})
	return d
}

// Arc3Points appends the arc that starts at (x1, y1), ends at (x2, y2) and
// passes through (x3, y3). If the points are collinear it returns an error
// wrapping geom.ErrCollinearPoints and the document is left unchanged.
func (d *Document) Arc3Points(x1, y1, x2, y2, x3, y3 float64, opts ...EntityOption) (*Document, error) {
	p, err := geom.ArcFromThreePoints(x1, y1, x2, y2, x3, y3)
	if err != nil {
		return d, fmt.Errorf("arc from (%g,%g) to (%g,%g) through (%g,%g): %w", x1, y1, x2, y2, x3, y3, err)
	}
	return d.Arc(p.CX, p.CY, p.Radius, p.StartAngle, p.EndAngle, opts...), nil
}

// BoundingBox returns the union of all entity boxes. ok is false for an
// empty document.
func (d *Document) BoundingBox() (box geom.BBox, ok bool) {
	if len(d.entities) == 0 {
		return geom.BBox{}, false
	}
	box = d.entities[0].BoundingBox()
	for _, e := range d.entities[1:] {
		box = box.Union(e.BoundingBox())
	}
	return box, true
}

// Width returns the horizontal extent of the drawing.
func (d *Document) Width() (float64, bool) {
	b, ok := d.BoundingBox()
	if !ok {
		return 0, false
	}
	return b.Width(), true
}

// Height returns the vertical extent of the drawing.
func (d *Document) Height() (float64, bool) {
	b, ok := d.BoundingBox()
	if !ok {
		return 0, false
	}
	return b.Height(), true
}

// Translate moves every entity by (dx, dy).
func (d *Document) Translate(dx, dy float64) *Document {
	for _, e := range d.entities {
		e.Translate(dx, dy)
	}
	return d
}

// Rotate rotates every entity about the origin. Positive angles are
// counterclockwise.
func (d *Document) Rotate(angleDeg float64) *Document {
	for _, e := range d.entities {
		e.Rotate(angleDeg)
	}
	return d
}

// MoveToOrigin translates the drawing so the lower-left corner of its
// bounding box is (0, 0). It does nothing on an empty document.
func (d *Document) MoveToOrigin() *Document {
	b, ok := d.BoundingBox()
	if !ok {
		return d
	}
	return d.Translate(-b.MinX, -b.MinY)
}

// DXF renders the complete DXF file.
func (d *Document) DXF() string {
	return renderDocument(d.units, d.entities)
}

// WriteTo writes the rendered DXF file to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.DXF())
	return int64(n), err
}
