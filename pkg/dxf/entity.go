package dxf

import "github.com/bft-labs/minidxf/pkg/geom"

// DefaultLayer is the layer entities are placed on unless OnLayer is given.
const DefaultLayer = "0"

// Kind names an entity type as written after group code 0.
type Kind string

const (
	KindLine Kind = "LINE"
	KindArc  Kind = "ARC"
)

// Entity is a drawable primitive held by a Document.
// The set of implementations is closed: *Line and *Arc.
type Entity interface {
	// Kind returns the DXF entity type.
	Kind() Kind

	// DXF returns the entity record, newline terminated.
	DXF() string

	// BoundingBox returns the axis-aligned box enclosing the entity.
	BoundingBox() geom.BBox

	// Translate moves the entity by (dx, dy) in place.
	Translate(dx, dy float64)

	// Rotate rotates the entity about the origin in place.
	Rotate(angleDeg float64)

	clone() Entity
}

// EntityOption configures an entity appended to a Document.
type EntityOption func(*entityOptions)

type entityOptions struct {
	layer string
}

// OnLayer places the entity on the named layer. An empty name keeps the
// default layer.
func OnLayer(name string) EntityOption {
	return func(o *entityOptions) {
		if name != "" {
			o.layer = name
		}
	}
}

func applyEntityOptions(opts []EntityOption) entityOptions {
	o := entityOptions{layer: DefaultLayer}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
