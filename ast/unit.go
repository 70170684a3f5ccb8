package ast

import (
	"fmt"

	"kalc.io/kalc/token"
)

// Unit is the angle unit a value is expressed in. The evaluation context has
// a default one; unit suffixes on expressions convert into that default.
type Unit uint8

const (
	Radians Unit = iota
	Degrees
)

func (u Unit) String() string {
	if u == Degrees {
		return "deg"
	}
	return "rad"
}

// UnitFor maps a unit suffix token to its Unit. ok is false for any other token.
func UnitFor(t token.Type) (Unit, bool) {
	switch t {
	case token.DEG:
		return Degrees, true
	case token.RAD:
		return Radians, true
	default:
		return Radians, false
	}
}

// UnitFromString parses a configuration value such as the -unit flag.
func UnitFromString(s string) (Unit, error) {
	switch s {
	case "deg", "degrees":
		return Degrees, nil
	case "rad", "radians":
		return Radians, nil
	default:
		return Radians, fmt.Errorf("unknown angle unit %q (use deg or rad)", s)
	}
}
