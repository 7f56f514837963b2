package calc

import "github.com/edwingeng/deque"

// operands is the operand stack of one evaluation frame.
type operands struct {
	d deque.Deque
}

func newOperands() *operands {
	return &operands{d: deque.NewDeque()}
}

func (s *operands) push(v float64) {
	s.d.PushBack(v)
}

// pop removes the top operand. ok is false if the stack is empty.
func (s *operands) pop() (v float64, ok bool) {
	if s.d.Empty() {
		return 0, false
	}
	return s.d.PopBack().(float64), true
}

func (s *operands) len() int {
	return s.d.Len()
}

// operator is an entry on the operator stack: the operator byte and the
// column it was read at, for error reporting.
type operator struct {
	op  byte
	pos int
}

const (
	opOpen = '('
	// opNeg is unary negation. It never appears in input text.
	opNeg = '~'
)

// operators is the operator stack of one evaluation frame.
type operators struct {
	d deque.Deque
}

func newOperators() *operators {
	return &operators{d: deque.NewDeque()}
}

func (s *operators) push(op operator) {
	s.d.PushBack(op)
}

func (s *operators) pop() operator {
	return s.d.PopBack().(operator)
}

// top returns the top operator. ok is false if the stack is empty.
func (s *operators) top() (op operator, ok bool) {
	if s.d.Empty() {
		return operator{}, false
	}
	return s.d.Back().(operator), true
}

func (s *operators) empty() bool {
	return s.d.Empty()
}
