// Package minidxf writes minimal DXF drawings made of lines and arcs.
//
// Example usage:
//
//	doc, err := minidxf.New("mm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc.Line(0, 0, 100, 0).Line(100, 0, 100, 50)
//	if _, err := doc.Arc3Points(100, 50, 0, 50, 50, 75); err != nil {
//	    log.Fatal(err)
//	}
//	if err := doc.MoveToOrigin().Save("part.dxf"); err != nil {
//	    log.Fatal(err)
//	}
package minidxf

import (
	"github.com/bft-labs/minidxf/pkg/dxf"
	"github.com/bft-labs/minidxf/pkg/geom"
)

// Document is an ordered list of lines and arcs with a unit setting.
type Document = dxf.Document

// Entity is a drawable primitive held by a Document.
type Entity = dxf.Entity

// BBox is an axis-aligned bounding box.
type BBox = geom.BBox

// New creates an empty document. units must be "mm" or "inch".
func New(units string) (*Document, error) {
	return dxf.NewDocument(units)
}

// OnLayer places an entity on the named layer.
func OnLayer(name string) dxf.EntityOption {
	return dxf.OnLayer(name)
}

// Errors re-exported for errors.Is checks.
var (
	ErrUnsupportedUnits = dxf.ErrUnsupportedUnits
	ErrCollinearPoints  = geom.ErrCollinearPoints
	ErrNonASCII         = dxf.ErrNonASCII
)
