// Package geom provides the 2D geometry kernel used by the DXF writer.
//
// All angles are in degrees. Positive angles are counterclockwise and 0°
// points along the positive X axis. Angles are never normalized on output:
// callers may receive values outside [0, 360).
//
// # Arcs
//
// An arc is described by its center, radius and a counterclockwise sweep
// from a start angle to an end angle. [AngleInArc] tests membership in a
// sweep, including sweeps that wrap through 0°, and [ArcFromThreePoints]
// solves the circle through three points and orients the sweep so that it
// passes through the middle point.
package geom
