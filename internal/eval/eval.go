package eval

import (
	"fmt"
	"math"
	"strings"
)

// Error reports a malformed or disallowed expression, or a runtime
// arithmetic fault. Rule handlers surface it inline in the chat reply.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

func newErrorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Evaluate parses expr and evaluates the resulting tree against the
// registries. It is a pure function: no state survives the call.
func Evaluate(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, newErrorf("empty expression")
	}
	root, err := parse(expr)
	if err != nil {
		return 0, err
	}
	return walk(root)
}

func walk(n node) (float64, error) {
	switch n := n.(type) {
	case literalNode:
		return float64(n), nil

	case identNode:
		v, ok := constants[string(n)]
		if !ok {
			return 0, newErrorf("unknown name %q", string(n))
		}
		return v, nil

	case unaryNode:
		apply, ok := unaryOps[n.op]
		if !ok {
			return 0, newErrorf("unsupported unary operator %q", n.op)
		}
		v, err := walk(n.operand)
		if err != nil {
			return 0, err
		}
		out, err := apply(v)
		return finite(n.op, out, err)

	case binaryNode:
		apply, ok := binaryOps[n.op]
		if !ok {
			return 0, newErrorf("unsupported operator %q", n.op)
		}
		a, err := walk(n.left)
		if err != nil {
			return 0, err
		}
		b, err := walk(n.right)
		if err != nil {
			return 0, err
		}
		out, err := apply(a, b)
		return finite(n.op, out, err)

	case callNode:
		fn, ok := functions[n.name]
		if !ok {
			return 0, newErrorf("unknown function %q", n.name)
		}
		if len(n.args) != 1 {
			return 0, newErrorf("%s takes 1 argument, got %d", n.name, len(n.args))
		}
		arg, err := walk(n.args[0])
		if err != nil {
			return 0, err
		}
		return finite(n.name, fn(arg), nil)

	default:
		// Unreachable with the current parser; kept so an unknown node shape
		// can never evaluate.
		return 0, newErrorf("unsupported expression")
	}
}

// finite converts NaN and Inf results into errors so domain faults and
// overflow are reported instead of propagating silently.
func finite(what string, v float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, newErrorf("%s: argument out of domain", what)
	}
	if math.IsInf(v, 0) {
		return 0, newErrorf("%s: result out of range", what)
	}
	return v, nil
}
