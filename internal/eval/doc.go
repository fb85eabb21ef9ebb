// Package eval implements a restricted arithmetic expression evaluator.
//
// Grammar: decimal literals, parentheses, the binary operators + - * / % **,
// unary + and -, the constants pi, e and tau, and single-argument calls to a
// fixed set of math functions. Nothing else parses, and nothing outside the
// operator/function registries ever executes.
//
// Precedence, loosest to tightest:
//
//	expr   = term   { ("+" | "-") term }
//	term   = unary  { ("*" | "/" | "%") unary }
//	unary  = ("+" | "-") unary | power
//	power  = atom   [ "**" unary ]          right-associative
//	atom   = number | ident | ident "(" args ")" | "(" expr ")"
//
// ** binds tighter than a unary operator on its left operand, so -2**2 is
// -(2**2) and 2**-3 is a valid exponent.
//
// All arithmetic is IEEE float64. Division or modulo by zero and domain
// faults (sqrt of a negative, log of a non-positive, out-of-range results)
// are reported as errors, never as Inf or NaN.
package eval
