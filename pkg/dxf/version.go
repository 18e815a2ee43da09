package dxf

// Version information for the dxf module.
const (
	// Version is the current version of the dxf module.
	Version = "1.0.0"

	// ACADVersion is the $ACADVER written to the HEADER section (AutoCAD R12).
	ACADVersion = "AC1009"
)
