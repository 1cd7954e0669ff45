package arith

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. Each node
// exclusively owns its children.
type Node struct {
	Kind NodeKind
	// Value is the value of a NodeNumber.
	Value float64
	// Op is the operator of a NodeBin or NodeUnary.
	Op rune
	// Left is the left operand of a NodeBin or the operand of a NodeUnary.
	Left *Node
	// Right is the right operand of a NodeBin.
	Right *Node
	// Pos is the source position of the node's operator or literal, or of the
	// token where parsing failed for a NodeNone.
	Pos int
}

// NodeKind is the variant of a Node.
type NodeKind int8

const (
	// NodeNone marks a place where no expression could be parsed. It is an
	// error to evaluate it.
	NodeNone NodeKind = iota
	NodeNumber
	NodeBin
	NodeUnary
)

func (k NodeKind) String() string {
	switch k {
	case NodeNone:
		return "None"
	case NodeNumber:
		return "NumberLit"
	case NodeBin:
		return "Bin"
	case NodeUnary:
		return "Unary"
	default:
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// NumberLit creates a literal node.
func NumberLit(v float64) *Node {
	return &Node{Kind: NodeNumber, Value: v}
}

// Bin creates a binary operation node. op should be one of + - * /.
func Bin(left, right *Node, op rune) *Node {
	return &Node{Kind: NodeBin, Op: op, Left: left, Right: right}
}

// Unary creates a unary operation node. op should be + or -.
func Unary(operand *Node, op rune) *Node {
	return &Node{Kind: NodeUnary, Op: op, Left: operand}
}

// None creates a node marking a failed parse.
func None() *Node {
	return &Node{Kind: NodeNone}
}

// At sets the node's source position and returns n.
func (n *Node) At(pos int) *Node {
	n.Pos = pos
	return n
}

// Equal reports whether n and m have the same structure, ignoring positions.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Kind != m.Kind {
		return false
	}
	switch n.Kind {
	case NodeNone:
		return true
	case NodeNumber:
		// A tree always equals itself, even holding NaN.
		return n.Value == m.Value || n.Value != n.Value && m.Value != m.Value
	case NodeBin:
		return n.Op == m.Op && n.Left.Equal(m.Left) && n.Right.Equal(m.Right)
	case NodeUnary:
		return n.Op == m.Op && n.Left.Equal(m.Left)
	default:
		return false
	}
}

// Valid reports whether the tree rooted at n contains no None, nil, or
// unknown nodes.
func (n *Node) Valid() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case NodeNumber:
		return true
	case NodeBin:
		return n.Left.Valid() && n.Right.Valid()
	case NodeUnary:
		return n.Left.Valid()
	default:
		return false
	}
}

// String formats the tree with every operation parenthesized, e.g.
// "((1 + 2) * -(3))". None nodes appear as "$", and nil or unknown nodes as
// "?".
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	if n == nil {
		b.WriteByte('?')
		return
	}
	switch n.Kind {
	case NodeNone:
		// Invalid nodes use an invalid character.
		b.WriteByte('$')
	case NodeNumber:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case NodeBin:
		b.WriteByte('(')
		n.Left.fmt(b)
		b.WriteByte(' ')
		b.WriteRune(n.Op)
		b.WriteByte(' ')
		n.Right.fmt(b)
		b.WriteByte(')')
	case NodeUnary:
		b.WriteRune(n.Op)
		b.WriteByte('(')
		n.Left.fmt(b)
		b.WriteByte(')')
	default:
		b.WriteByte('?')
	}
}
