package drawing

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/minidxf/pkg/dxf"
	"github.com/bft-labs/minidxf/pkg/geom"
)

const sample = `
units = "inch"

[[entity]]
type = "line"
layer = "cut"
x1 = -10.0
y1 = -20.0
x2 = 30.0
y2 = 40.0

[[entity]]
type = "arc"
cx = 0.0
cy = 0.0
radius = 5.0
start = 0.0
end = 90.0

[[entity]]
type = "arc3"
points = [[0.0, 0.0], [10.0, 0.0], [5.0, 5.0]]

[[transform]]
op = "move_to_origin"
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if d.Units != "inch" {
		t.Errorf("Units = %q, want inch", d.Units)
	}
	if len(d.Entities) != 3 {
		t.Fatalf("len(Entities) = %d, want 3", len(d.Entities))
	}
	if d.Entities[0].Layer != "cut" || d.Entities[0].X2 != 30 {
		t.Errorf("Entities[0] = %+v", d.Entities[0])
	}
	if d.Entities[1].Radius != 5 || d.Entities[1].End != 90 {
		t.Errorf("Entities[1] = %+v", d.Entities[1])
	}
	if len(d.Entities[2].Points) != 3 {
		t.Errorf("Entities[2].Points = %v", d.Entities[2].Points)
	}
	if len(d.Transforms) != 1 || d.Transforms[0].Op != OpMoveToOrigin {
		t.Errorf("Transforms = %+v", d.Transforms)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[[entity]]\ntype = \"line\"\nx3 = 1.0\n"))
	if err == nil {
		t.Fatal("Parse() expected error for unknown key")
	}
}

func TestBuild(t *testing.T) {
	d, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	doc, err := d.Build("")
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if doc.Units() != dxf.UnitsInch {
		t.Errorf("Units() = %v, want inch", doc.Units())
	}
	if doc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", doc.Len())
	}
	box, ok := doc.BoundingBox()
	if !ok {
		t.Fatal("BoundingBox() returned no box")
	}
	if box.MinX != 0 || box.MinY != 0 {
		t.Errorf("lower-left = (%v, %v), want (0, 0)", box.MinX, box.MinY)
	}
	if line := doc.Entities()[0].(*dxf.Line); line.Layer != "cut" {
		t.Errorf("line layer = %q, want cut", line.Layer)
	}
}

func TestBuildUnitsOverride(t *testing.T) {
	d := Description{Units: "inch"}

	doc, err := d.Build("mm")
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if doc.Units() != dxf.UnitsMM {
		t.Errorf("Units() = %v, want mm", doc.Units())
	}

	doc, err = Description{}.Build("")
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if doc.Units() != dxf.DefaultUnits {
		t.Errorf("Units() = %v, want %v", doc.Units(), dxf.DefaultUnits)
	}
}

func TestBuildTransformsInOrder(t *testing.T) {
	d := Description{
		Entities: []Entity{{Type: TypeLine, X2: 10}},
		Transforms: []Transform{
			{Op: OpTranslate, DX: 10},
			{Op: OpRotate, Angle: 90},
		},
	}

	doc, err := d.Build("")
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	box, _ := doc.BoundingBox()
	want := geom.BBox{MinX: 0, MinY: 10, MaxX: 0, MaxY: 20}
	if math.Abs(box.MinX-want.MinX) > 1e-9 || math.Abs(box.MinY-want.MinY) > 1e-9 ||
		math.Abs(box.MaxX-want.MaxX) > 1e-9 || math.Abs(box.MaxY-want.MaxY) > 1e-9 {
		t.Errorf("BoundingBox() = %+v, want %+v", box, want)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		desc    Description
		wantErr error
		wantMsg string
	}{
		{
			name:    "unsupported units",
			desc:    Description{Units: "furlong"},
			wantErr: dxf.ErrUnsupportedUnits,
		},
		{
			name:    "unknown entity",
			desc:    Description{Entities: []Entity{{Type: "line"}, {Type: "spline"}}},
			wantErr: ErrUnknownEntity,
			wantMsg: "entity 2",
		},
		{
			name:    "non-positive radius",
			desc:    Description{Entities: []Entity{{Type: TypeArc, Radius: 0}}},
			wantErr: ErrInvalidEntity,
		},
		{
			name:    "NaN radius",
			desc:    Description{Entities: []Entity{{Type: TypeArc, Radius: math.NaN()}}},
			wantErr: ErrInvalidEntity,
			wantMsg: "radius NaN",
		},
		{
			name:    "arc3 wrong point count",
			desc:    Description{Entities: []Entity{{Type: TypeArc3, Points: [][]float64{{0, 0}, {1, 1}}}}},
			wantErr: ErrInvalidEntity,
		},
		{
			name:    "arc3 wrong arity",
			desc:    Description{Entities: []Entity{{Type: TypeArc3, Points: [][]float64{{0, 0}, {1}, {2, 2}}}}},
			wantErr: ErrInvalidEntity,
		},
		{
			name:    "arc3 collinear",
			desc:    Description{Entities: []Entity{{Type: TypeArc3, Points: [][]float64{{0, 0}, {10, 10}, {5, 5}}}}},
			wantErr: geom.ErrCollinearPoints,
		},
		{
			name:    "unknown transform",
			desc:    Description{Transforms: []Transform{{Op: "scale"}}},
			wantErr: ErrUnknownTransform,
			wantMsg: "transform 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.desc.Build("")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Build() error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(d.Entities) != 3 {
		t.Errorf("len(Entities) = %d, want 3", len(d.Entities))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}
