// Package render compiles drawing descriptions into DXF files.
package render

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bft-labs/minidxf/internal/drawing"
	"github.com/bft-labs/minidxf/pkg/dxf"
	"github.com/bft-labs/minidxf/pkg/geom"
	"github.com/bft-labs/minidxf/pkg/log"
)

// Options controls how a description is compiled.
type Options struct {
	// Units overrides the units in the description when non-empty.
	Units string

	// Output is the DXF path. Empty derives it from the input path.
	Output string

	// OutDir is used with a derived output path. Empty means the input's
	// directory.
	OutDir string

	// MoveToOrigin normalizes the drawing after the description's transforms.
	MoveToOrigin bool
}

// Result summarizes a compiled drawing.
type Result struct {
	Output   string
	Units    dxf.Units
	Entities int

	// HasBounds is false for a drawing with no entities.
	HasBounds bool
	Bounds    geom.BBox
}

// Width returns the drawing width, or 0 for an empty drawing.
func (r Result) Width() float64 {
	if !r.HasBounds {
		return 0
	}
	return r.Bounds.Width()
}

// Height returns the drawing height, or 0 for an empty drawing.
func (r Result) Height() float64 {
	if !r.HasBounds {
		return 0
	}
	return r.Bounds.Height()
}

// Renderer loads descriptions and writes DXF files.
type Renderer struct {
	logger log.Logger
}

// New creates a Renderer. A nil logger discards output.
func New(logger log.Logger) *Renderer {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Renderer{logger: logger}
}

// OutputPath returns the DXF path for input: same base name with a .dxf
// extension, placed in outDir or next to the input.
func OutputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".dxf"
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	return filepath.Join(outDir, base)
}

// Build loads input and returns the resulting document without saving it.
func (r *Renderer) Build(input string, opts Options) (*dxf.Document, error) {
	desc, err := drawing.Load(input)
	if err != nil {
		return nil, fmt.Errorf("load drawing: %w", err)
	}
	doc, err := desc.Build(opts.Units)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	if opts.MoveToOrigin {
		doc.MoveToOrigin()
	}
	return doc, nil
}

// Inspect builds input and summarizes it without writing anything.
func (r *Renderer) Inspect(input string, opts Options) (Result, error) {
	doc, err := r.Build(input, opts)
	if err != nil {
		return Result{}, err
	}
	return summarize(doc, ""), nil
}

// Render builds input and saves the DXF file. Errors are returned, not
// logged; only a successful render is logged.
func (r *Renderer) Render(input string, opts Options) (Result, error) {
	start := time.Now()

	doc, err := r.Build(input, opts)
	if err != nil {
		return Result{}, err
	}

	out := opts.Output
	if out == "" {
		out = OutputPath(input, opts.OutDir)
	}
	if err := doc.Save(out); err != nil {
		return Result{}, err
	}

	res := summarize(doc, out)
	fields := []log.Field{
		log.String("input", input),
		log.String("output", out),
		log.String("units", res.Units.String()),
		log.Int("entities", res.Entities),
		log.Bool("move_to_origin", opts.MoveToOrigin),
		log.Duration("took", time.Since(start)),
	}
	if res.HasBounds {
		fields = append(fields, log.Float64("width", res.Width()), log.Float64("height", res.Height()))
	}
	r.logger.Info("rendered drawing", fields...)
	return res, nil
}

func summarize(doc *dxf.Document, out string) Result {
	res := Result{
		Output:   out,
		Units:    doc.Units(),
		Entities: doc.Len(),
	}
	res.Bounds, res.HasBounds = doc.BoundingBox()
	return res
}
