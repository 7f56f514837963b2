package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func Example() {
	eng := calc.New()
	for _, expr := range []string{"a=33", "b=11", "c=5", "a+(b*c)/a", "5+_", "1/(c-5)"} {
		r, err := eng.Eval(expr)
		if err != nil {
			fmt.Printf("%-10s error: %v\n", expr, err)
			continue
		}
		fmt.Printf("%-10s %.2f\n", expr, r)
	}
	for _, b := range eng.Env().Bindings() {
		fmt.Printf("%s = %.2f\n", b.Name, b.Value)
	}

	// Output:
	// a=33       33.00
	// b=11       11.00
	// c=5        5.00
	// a+(b*c)/a  34.67
	// 5+_        39.67
	// 1/(c-5)    error: 2: division by zero
	// _ = 39.67
	// a = 33.00
	// b = 11.00
	// c = 5.00
}

func ExampleFunc() {
	eng := calc.New(calc.Funcs(map[string]calc.Func{
		"cube": func(x float64) float64 { return x * x * x },
	}))
	r, _ := eng.Eval("cube(1+2)-sqrt(4)")
	fmt.Println(r)

	// Output:
	// 25
}
