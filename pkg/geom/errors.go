package geom

import "errors"

// ErrCollinearPoints is returned by ArcFromThreePoints when the three points
// lie on a line (or close enough that no circle can be fitted).
var ErrCollinearPoints = errors.New("geom: points are collinear")
