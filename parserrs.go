package calc

import (
	"errors"
	"strconv"
)

// NumberError is an error indicating a numeric token that is not a valid
// number, e.g. "1.2.3". It implements InputError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the token text.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// AssignError is an error indicating an invalid binding. It implements
// InputError.
type AssignError struct {
	// Col is the position of the offending = sign.
	Col int
	// Name is the binding target, if there was one.
	Name string
	// Chained is whether the expression already had a binding target.
	Chained bool
}

func (err *AssignError) Error() string {
	switch {
	case err.Chained:
		return errpos(err.Col, "chained assignment to "+strconv.Quote(err.Name)+" is not supported")
	case err.Name == "":
		return errpos(err.Col, "assignment with no variable name")
	default:
		return errpos(err.Col, "cannot assign to function "+strconv.Quote(err.Name))
	}
}

func (err *AssignError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating a division by exactly zero. It
// implements InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator without enough operands,
// or two operands with no operator between them. It implements InputError.
type OperandError struct {
	// Col is the position of the operator, or of the second operand if
	// Missing is set.
	Col int
	// Operator is the operator that could not be applied.
	Operator string
	// Missing indicates that an operator was expected but an operand was
	// found.
	Missing bool
}

func (err *OperandError) Error() string {
	if err.Missing {
		return errpos(err.Col, "missing operator")
	}
	return errpos(err.Col, "not enough operands for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is an open one.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name not followed by a
// parenthesized argument, or an argument that is never closed. It implements
// InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Unterminated is true if the argument list was opened but not closed.
	Unterminated bool
}

func (err *CallError) Error() string {
	if err.Unterminated {
		return errpos(err.Col, "unterminated call to "+err.Func)
	}
	return errpos(err.Col, "call to "+err.Func+" needs a parenthesized argument")
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// NameError is an error indicating an identifier that is neither a function
// nor a bound variable. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined variable or function: "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// ErrBusy is returned by Engine.Eval when the engine is already evaluating an
// expression for another caller.
var ErrBusy = errors.New("calc: engine is busy")

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*AssignError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*LexError)(nil)
)
