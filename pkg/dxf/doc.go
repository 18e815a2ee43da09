// Package dxf builds minimal DXF drawings made of lines and arcs.
//
// A [Document] holds an ordered list of entities and a unit setting. Entities
// are appended with [Document.Line], [Document.Arc] and [Document.Arc3Points]
// and transformed in place with [Document.Translate], [Document.Rotate] and
// [Document.MoveToOrigin]. [Document.DXF] renders the drawing as an R12
// (AC1009) DXF text file with a single default layer table.
//
// # Usage
//
//	doc, err := dxf.NewDocument("mm")
//	if err != nil {
//	    return err
//	}
//	doc.Line(0, 0, 100, 0).
//	    Arc(100, 50, 50, -90, 90, dxf.OnLayer("outline")).
//	    MoveToOrigin()
//	if err := doc.Save("part.dxf"); err != nil {
//	    return err
//	}
//
// A Document is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
//
// # Version
//
// Current version: 1.0.0
package dxf
