package calc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constprec is the precision in bits at which constants are computed before
// rounding to float64.
const constprec = 64

// Constants returns the mathematical constants pi and e, keyed by name.
func Constants() map[string]float64 {
	var pi, e, one big.Float
	pi.SetPrec(constprec)
	bigfloat.Pi(&pi)
	one.SetPrec(constprec).SetFloat64(1)
	e.SetPrec(constprec)
	bigfloat.Exp(&e, &one)
	p, _ := pi.Float64()
	x, _ := e.Float64()
	return map[string]float64{"pi": p, "e": x}
}
