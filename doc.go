// Package calc implements an interactive floating-point calculator.
//
// Expressions use the four arithmetic operators, parentheses, unary minus,
// and the functions sin, cos, sqrt and log (natural). "x=expr" evaluates expr
// and binds the result to x for later expressions. The result of every
// successful evaluation is also bound to "_".
//
// Operators are reduced eagerly from left to right: a new operator first
// applies every pending operator, unless it is * or / and the pending one is
// + or -. This gives the usual precedence for the four operators.
//
package calc
