// Package prelude is the builtin catalog: named constants and the unary and
// binary function tables. Constants are kept as text and re-enter literal
// parsing in the evaluator, they are not special-cased numerically. Lookups
// report "not found" instead of erroring so the evaluator can fall through to
// user declarations.
package prelude

import (
	"math"

	"fortio.org/sets"
	"kalc.io/kalc/ast"
)

var constants = map[string]string{
	"pi":  "3.14159265358979323846",
	"e":   "2.71828182845904523536",
	"tau": "6.28318530717958647692",
	"phi": "1.61803398874989484820",
}

// Constant returns the textual value of a named constant.
func Constant(name string) (string, bool) {
	v, ok := constants[name]
	return v, ok
}

type (
	unaryFunc  func(x float64, unit ast.Unit) float64
	binaryFunc func(x, y float64, unit ast.Unit) float64
)

// toRadians converts an input angle from the context's unit to radians,
// which is what the math package works in.
func toRadians(x float64, unit ast.Unit) float64 {
	if unit == ast.Degrees {
		return x * math.Pi / 180
	}
	return x
}

// fromRadians converts an output angle from radians back to the context's unit.
func fromRadians(x float64, unit ast.Unit) float64 {
	if unit == ast.Degrees {
		return x * 180 / math.Pi
	}
	return x
}

// angleIn wraps a radians-based function so its input honors the angle unit.
func angleIn(f func(float64) float64) unaryFunc {
	return func(x float64, unit ast.Unit) float64 {
		return f(toRadians(x, unit))
	}
}

// angleOut wraps a radians-based function so its output honors the angle unit.
func angleOut(f func(float64) float64) unaryFunc {
	return func(x float64, unit ast.Unit) float64 {
		return fromRadians(f(x), unit)
	}
}

// plain wraps a unit-agnostic function.
func plain(f func(float64) float64) unaryFunc {
	return func(x float64, _ ast.Unit) float64 {
		return f(x)
	}
}

var unaryFuncs = map[string]unaryFunc{
	"sin":   angleIn(math.Sin),
	"cos":   angleIn(math.Cos),
	"tan":   angleIn(math.Tan),
	"asin":  angleOut(math.Asin),
	"acos":  angleOut(math.Acos),
	"atan":  angleOut(math.Atan),
	"sinh":  plain(math.Sinh),
	"cosh":  plain(math.Cosh),
	"tanh":  plain(math.Tanh),
	"sqrt":  plain(math.Sqrt),
	"cbrt":  plain(math.Cbrt),
	"ln":    plain(math.Log),
	"log":   plain(math.Log10),
	"exp":   plain(math.Exp),
	"abs":   plain(math.Abs),
	"floor": plain(math.Floor),
	"ceil":  plain(math.Ceil),
	"round": plain(math.Round),
}

var binaryFuncs = map[string]binaryFunc{
	"min": func(x, y float64, _ ast.Unit) float64 { return math.Min(x, y) },
	"max": func(x, y float64, _ ast.Unit) float64 { return math.Max(x, y) },
	"hypot": func(x, y float64, _ ast.Unit) float64 {
		return math.Hypot(x, y)
	},
	"atan2": func(y, x float64, unit ast.Unit) float64 {
		return fromRadians(math.Atan2(y, x), unit)
	},
	// log with an arbitrary base, log(8, 2) == 3.
	"log": func(x, base float64, _ ast.Unit) float64 {
		return math.Log(x) / math.Log(base)
	},
	// nth root, nroot(27, 3) == 3.
	"nroot": func(x, n float64, _ ast.Unit) float64 {
		return math.Pow(x, 1/n)
	},
	"mod": func(x, y float64, _ ast.Unit) float64 {
		return math.Mod(x, y)
	},
}

// CallUnary dispatches a one-argument builtin. ok is false when the name is
// not a unary builtin (callers then try user-defined functions).
func CallUnary(name string, x float64, unit ast.Unit) (float64, bool) {
	f, ok := unaryFuncs[name]
	if !ok {
		return 0, false
	}
	return f(x, unit), true
}

// CallBinary dispatches a two-argument builtin.
func CallBinary(name string, x, y float64, unit ast.Unit) (float64, bool) {
	f, ok := binaryFuncs[name]
	if !ok {
		return 0, false
	}
	return f(x, y, unit), true
}

// Names returns all constant and builtin function names, for completion and
// introspection.
func Names() sets.Set[string] {
	s := sets.New[string]()
	for k := range constants {
		s.Add(k)
	}
	for k := range unaryFuncs {
		s.Add(k)
	}
	for k := range binaryFuncs {
		s.Add(k)
	}
	return s
}
