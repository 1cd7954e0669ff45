package arith

import "math"

type interpreter struct {
	errs ErrorList
}

// Interpret evaluates an expression tree. Evaluation always completes: a
// division by zero or a None, nil, or unknown node contributes 0 to the result and adds an
// error to the returned ErrorList, and evaluation continues with the rest of
// the tree. The error is nil if there were no such problems.
func Interpret(n *Node) (float64, error) {
	var it interpreter
	v := it.eval(n)
	return v, it.errs.Err()
}

func (it *interpreter) eval(n *Node) float64 {
	if n == nil {
		it.errs = append(it.errs, &NodeError{})
		return 0
	}
	switch n.Kind {
	case NodeNumber:
		return n.Value
	case NodeBin:
		// Both sides are always evaluated so that every error is reported.
		l := it.eval(n.Left)
		r := it.eval(n.Right)
		return it.bin(n, l, r)
	case NodeUnary:
		v := it.eval(n.Left)
		switch n.Op {
		case '+':
			// Unary plus is absolute value, not identity.
			return math.Abs(v)
		case '-':
			return -v
		default:
			return 0
		}
	default:
		// None, and any kind a parse never produces.
		it.errs = append(it.errs, &NodeError{Col: n.Pos})
		return 0
	}
}

func (it *interpreter) bin(n *Node, l, r float64) float64 {
	switch n.Op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		if r == 0 {
			it.errs = append(it.errs, &DivisionError{Col: n.Pos})
			return 0
		}
		return l / r
	default:
		return 0
	}
}

// Eval is a shortcut to lex, parse, and interpret a line. It stops at the
// first stage that reports errors and returns those errors. The result is
// meaningful only when the error is nil.
func Eval(src string, opts ...ParseOption) (float64, error) {
	toks, err := Lex(src)
	if err != nil {
		return 0, err
	}
	n, err := Parse(toks, src, opts...)
	if err != nil {
		return 0, err
	}
	return Interpret(n)
}
