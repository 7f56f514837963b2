package calc

import (
	"errors"
	"strconv"

	"fortio.org/log"
)

// frame is the state of one evaluation: either a whole expression or the
// argument of a function call. Each frame owns its stacks and its binding
// target but shares the engine's environment.
type frame struct {
	eng  *Engine
	scan *lexer
	nums *operands
	ops  *operators
	// bind is the variable the frame's result is assigned to, if any.
	bind string
	// want is whether the next token must start an operand.
	want bool
	// depth is the number of open brackets on ops.
	depth int
	// call is the function whose argument this frame evaluates, or "" for
	// the top level. callpos is the column of the function name.
	call    string
	callpos int
}

// evaluate evaluates tokens from scan until the end of the frame, which is
// EOF at the top level or the close bracket matching the call's open bracket
// for a function argument. On success, the result is bound to the frame's
// binding target, if any, and to ResultName.
func (eng *Engine) evaluate(scan *lexer, call string, callpos int) (float64, error) {
	f := frame{
		eng:     eng,
		scan:    scan,
		nums:    newOperands(),
		ops:     newOperators(),
		want:    true,
		call:    call,
		callpos: callpos,
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenNum:
			if !f.want {
				return 0, &OperandError{Col: tok.pos, Missing: true}
			}
			v, err := strconv.ParseFloat(tok.text, 64)
			// Out of range literals become infinities.
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return 0, &NumberError{Col: tok.pos, Text: tok.text}
			}
			f.nums.push(v)
			f.want = false
		case tokenIdent:
			if err := f.ident(tok); err != nil {
				return 0, err
			}
		case tokenAssign:
			// Assignments after an identifier are consumed by ident.
			return 0, &AssignError{Col: tok.pos}
		case tokenOp:
			if f.want {
				if tok.text == "-" {
					f.ops.push(operator{op: opNeg, pos: tok.pos})
					continue
				}
				return 0, &OperandError{Col: tok.pos, Operator: tok.text}
			}
			op := tok.text[0]
			for {
				top, ok := f.ops.top()
				if !ok || top.op == opOpen || (op == '*' || op == '/') && (top.op == '+' || top.op == '-') {
					break
				}
				if err := f.apply(f.ops.pop()); err != nil {
					return 0, err
				}
			}
			f.ops.push(operator{op: op, pos: tok.pos})
			f.want = true
		case tokenOpen:
			if !f.want {
				return 0, &OperandError{Col: tok.pos, Missing: true}
			}
			f.ops.push(operator{op: opOpen, pos: tok.pos})
			f.depth++
		case tokenClose:
			if f.depth == 0 && f.call == "" {
				return 0, &BracketError{Col: tok.pos}
			}
			if f.want {
				return 0, f.dangling(tok)
			}
			for {
				top, ok := f.ops.top()
				if !ok || top.op == opOpen {
					break
				}
				if err := f.apply(f.ops.pop()); err != nil {
					return 0, err
				}
			}
			if f.depth == 0 {
				// End of the function argument.
				return f.result(tok)
			}
			f.ops.pop()
			f.depth--
		case tokenEOF:
			if f.call != "" {
				return 0, &CallError{Col: f.callpos, Func: f.call, Unterminated: true}
			}
			if f.want {
				return 0, f.dangling(tok)
			}
			for !f.ops.empty() {
				op := f.ops.pop()
				if op.op == opOpen {
					return 0, &BracketError{Col: op.pos, Open: true}
				}
				if err := f.apply(op); err != nil {
					return 0, err
				}
			}
			return f.result(tok)
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// ident handles an identifier token: a binding target, a function call, or a
// variable reference.
func (f *frame) ident(tok lexToken) error {
	if !f.want {
		return &OperandError{Col: tok.pos, Missing: true}
	}
	next, err := f.scan.peek()
	if err != nil {
		return err
	}
	fn := f.eng.funcs[tok.text]
	if next.kind == tokenAssign {
		f.scan.next()
		if f.bind != "" {
			return &AssignError{Col: next.pos, Name: f.bind, Chained: true}
		}
		if fn != nil {
			return &AssignError{Col: next.pos, Name: tok.text}
		}
		f.bind = tok.text
		return nil
	}
	if fn != nil {
		if next.kind != tokenOpen {
			return &CallError{Col: tok.pos, Func: tok.text}
		}
		f.scan.next()
		log.LogVf("calc: call %s at column %d", tok.text, tok.pos)
		x, err := f.eng.evaluate(f.scan, tok.text, tok.pos)
		if err != nil {
			return err
		}
		f.nums.push(fn(x))
		f.want = false
		return nil
	}
	v, ok := f.eng.env.Lookup(tok.text)
	if !ok {
		return &NameError{Col: tok.pos, Name: tok.text}
	}
	f.nums.push(v)
	f.want = false
	return nil
}

// apply pops the operands of op, applies it, and pushes the result.
func (f *frame) apply(op operator) error {
	if op.op == opNeg {
		x, ok := f.nums.pop()
		if !ok {
			return &OperandError{Col: op.pos, Operator: "-"}
		}
		f.nums.push(-x)
		return nil
	}
	x, ok := f.nums.pop()
	if !ok {
		return &OperandError{Col: op.pos, Operator: string(op.op)}
	}
	y, ok := f.nums.pop()
	if !ok {
		return &OperandError{Col: op.pos, Operator: string(op.op)}
	}
	r, err := binary(op, y, x)
	if err != nil {
		return err
	}
	f.nums.push(r)
	return nil
}

// binary applies a binary operator. base is the left operand.
func binary(op operator, base, x float64) (float64, error) {
	switch op.op {
	case '+':
		return base + x, nil
	case '-':
		return base - x, nil
	case '*':
		return base * x, nil
	case '/':
		// Exact comparison; -0 is also zero.
		if x == 0 {
			return 0, &DivisionError{Col: op.pos, X: base}
		}
		return base / x, nil
	default:
		panic("calc: invalid operator " + strconv.QuoteRune(rune(op.op)))
	}
}

// dangling creates the error for a frame that ends or closes a bracket where
// an operand is expected.
func (f *frame) dangling(end lexToken) error {
	top, ok := f.ops.top()
	if ok && top.op != opOpen {
		s := string(top.op)
		if top.op == opNeg {
			s = "-"
		}
		return &OperandError{Col: top.pos, Operator: s}
	}
	return &EmptyExpressionError{Col: end.pos, End: end.text}
}

// result takes the frame's result and commits its bindings.
func (f *frame) result(end lexToken) (float64, error) {
	v, ok := f.nums.pop()
	if !ok {
		return 0, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	if f.bind != "" {
		log.LogVf("calc: bind %s = %g", f.bind, v)
		f.eng.env.Set(f.bind, v)
	}
	f.eng.env.Set(ResultName, v)
	return v, nil
}
