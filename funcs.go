package calc

import "math"

// Func is a function from reals to reals. Domain errors are not reported;
// out-of-domain arguments produce NaN or infinities as package math does.
type Func func(x float64) float64

var globalfuncs = map[string]Func{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"sqrt": math.Sqrt,
	"log":  math.Log,
}

// DefaultFuncs returns a copy of the functions every engine knows by default.
func DefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(globalfuncs))
	for k, v := range globalfuncs {
		m[k] = v
	}
	return m
}

// DisableDefaultFuncs returns a functions map suitable for disabling all
// default functions when passed to Funcs. Their names then evaluate as
// variables.
func DisableDefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = nil
	}
	return m
}
