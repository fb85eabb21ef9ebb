package eval

import "math"

// The allow-lists. Fixed at startup; the walker consults them before applying
// anything, and a miss is a hard rejection. There is no other execution path.
var binaryOps = map[string]func(a, b float64) (float64, error){
	"+": func(a, b float64) (float64, error) { return a + b, nil },
	"-": func(a, b float64) (float64, error) { return a - b, nil },
	"*": func(a, b float64) (float64, error) { return a * b, nil },
	"/": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, newErrorf("division by zero")
		}
		return a / b, nil
	},
	// math.Mod truncates: the result keeps the sign of the dividend.
	"%": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, newErrorf("modulo by zero")
		}
		return math.Mod(a, b), nil
	},
	"**": func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
}

var unaryOps = map[string]func(v float64) (float64, error){
	"+": func(v float64) (float64, error) { return v, nil },
	"-": func(v float64) (float64, error) { return -v, nil },
}

// All registered functions take exactly one argument; walk enforces arity.
var functions = map[string]func(v float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sqrt":  math.Sqrt,
	"log":   math.Log,
	"log10": math.Log10,
	"exp":   math.Exp,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
}
