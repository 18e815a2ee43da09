// Package drawing decodes TOML drawing descriptions into DXF documents.
//
// A description lists entities in draw order followed by transforms that are
// applied in order once every entity has been added:
//
//	units = "mm"
//
//	[[entity]]
//	type = "line"
//	x1 = 0.0
//	y1 = 0.0
//	x2 = 10.0
//	y2 = 0.0
//
//	[[entity]]
//	type = "arc3"
//	points = [[0.0, 0.0], [10.0, 0.0], [5.0, 5.0]]
//
//	[[transform]]
//	op = "move_to_origin"
package drawing

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/minidxf/pkg/dxf"
)

// Entity types.
const (
	TypeLine = "line"
	TypeArc  = "arc"
	TypeArc3 = "arc3"
)

// Transform operations.
const (
	OpTranslate    = "translate"
	OpRotate       = "rotate"
	OpMoveToOrigin = "move_to_origin"
)

var (
	// ErrUnknownEntity is returned for an entity type other than line, arc or arc3.
	ErrUnknownEntity = errors.New("drawing: unknown entity type")

	// ErrUnknownTransform is returned for an unrecognized transform op.
	ErrUnknownTransform = errors.New("drawing: unknown transform")

	// ErrInvalidEntity is returned for malformed entity parameters.
	ErrInvalidEntity = errors.New("drawing: invalid entity")
)

// Description is the decoded form of a drawing file.
type Description struct {
	Units      string      `toml:"units"`
	Entities   []Entity    `toml:"entity"`
	Transforms []Transform `toml:"transform"`
}

// Entity is one [[entity]] table. Which fields apply depends on Type.
type Entity struct {
	Type  string `toml:"type"`
	Layer string `toml:"layer"`

	// line
	X1 float64 `toml:"x1"`
	Y1 float64 `toml:"y1"`
	X2 float64 `toml:"x2"`
	Y2 float64 `toml:"y2"`

	// arc
	CX     float64 `toml:"cx"`
	CY     float64 `toml:"cy"`
	Radius float64 `toml:"radius"`
	Start  float64 `toml:"start"`
	End    float64 `toml:"end"`

	// arc3: start, end, pass-through
	Points [][]float64 `toml:"points"`
}

// Transform is one [[transform]] table.
type Transform struct {
	Op    string  `toml:"op"`
	Angle float64 `toml:"angle"`
	DX    float64 `toml:"dx"`
	DY    float64 `toml:"dy"`
}

// Parse decodes a description. Unknown keys are rejected so typos in
// parameter names do not silently become zero coordinates.
func Parse(data []byte) (Description, error) {
	var d Description
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return Description{}, fmt.Errorf("decode drawing: %w", err)
	}
	return d, nil
}

// Load reads and decodes the description at path.
func Load(path string) (Description, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Description{}, err
	}
	d, err := Parse(b)
	if err != nil {
		return Description{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Build creates the document described by d. A non-empty units argument
// overrides the units named in the file.
func (d Description) Build(units string) (*dxf.Document, error) {
	if units == "" {
		units = d.Units
	}
	if units == "" {
		units = string(dxf.DefaultUnits)
	}

	doc, err := dxf.NewDocument(units)
	if err != nil {
		return nil, err
	}

	for i, e := range d.Entities {
		if err := e.addTo(doc); err != nil {
			return nil, fmt.Errorf("entity %d (%s): %w", i+1, e.Type, err)
		}
	}
	for i, t := range d.Transforms {
		if err := t.applyTo(doc); err != nil {
			return nil, fmt.Errorf("transform %d (%s): %w", i+1, t.Op, err)
		}
	}
	return doc, nil
}

func (e Entity) addTo(doc *dxf.Document) error {
	layer := dxf.OnLayer(e.Layer)

	switch e.Type {
	case TypeLine:
		doc.Line(e.X1, e.Y1, e.X2, e.Y2, layer)
	case TypeArc:
		if !(e.Radius > 0) {
			return fmt.Errorf("%w: radius %g must be positive", ErrInvalidEntity, e.Radius)
		}
		doc.Arc(e.CX, e.CY, e.Radius, e.Start, e.End, layer)
	case TypeArc3:
		if len(e.Points) != 3 {
			return fmt.Errorf("%w: arc3 needs 3 points, got %d", ErrInvalidEntity, len(e.Points))
		}
		for j, p := range e.Points {
			if len(p) != 2 {
				return fmt.Errorf("%w: point %d has %d coordinates, want 2", ErrInvalidEntity, j+1, len(p))
			}
		}
		p := e.Points
		if _, err := doc.Arc3Points(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1], layer); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEntity, e.Type)
	}
	return nil
}

func (t Transform) applyTo(doc *dxf.Document) error {
	switch t.Op {
	case OpTranslate:
		doc.Translate(t.DX, t.DY)
	case OpRotate:
		doc.Rotate(t.Angle)
	case OpMoveToOrigin:
		doc.MoveToOrigin()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransform, t.Op)
	}
	return nil
}
