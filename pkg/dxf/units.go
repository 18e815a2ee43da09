package dxf

import "fmt"

// Units selects the drawing unit written to $INSUNITS.
type Units string

const (
	UnitsMM   Units = "mm"
	UnitsInch Units = "inch"
)

// DefaultUnits is used when no unit is given.
const DefaultUnits = UnitsMM

// ParseUnits validates a unit name.
func ParseUnits(s string) (Units, error) {
	switch u := Units(s); u {
	case UnitsMM, UnitsInch:
		return u, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedUnits, s)
	}
}

// Code returns the $INSUNITS value: 4 for millimeters, 1 for inches.
func (u Units) Code() int {
	switch u {
	case UnitsInch:
		return 1
	case UnitsMM:
		return 4
	default:
		return 0
	}
}

func (u Units) String() string { return string(u) }
