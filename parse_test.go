package arith

import (
	"errors"
	"testing"
)

// haskind checks whether a parse tree contains a node of the given kind.
func (n *Node) haskind(k NodeKind) bool {
	if n == nil {
		return false
	}
	if n.Kind == k {
		return true
	}
	return n.Left.haskind(k) || n.Right.haskind(k)
}

func parseString(t *testing.T, src string, opts ...ParseOption) (*Node, error) {
	t.Helper()
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("%q failed to lex: %v", src, err)
	}
	return Parse(toks, src, opts...)
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *Node
	}{
		{"num", "1", NumberLit(1)},
		{"paren", "(1)", NumberLit(1)},
		{"multi", "((((1))))", NumberLit(1)},
		{"add", "1 + 2", Bin(NumberLit(1), NumberLit(2), '+')},
		{"sub", "1 - 2", Bin(NumberLit(1), NumberLit(2), '-')},
		{"mul", "1 * 2", Bin(NumberLit(1), NumberLit(2), '*')},
		{"div", "1 / 2", Bin(NumberLit(1), NumberLit(2), '/')},
		{"neg", "-5", Unary(NumberLit(5), '-')},
		{"plus", "+5", Unary(NumberLit(5), '+')},
		{"plus-neg", "+(-5)", Unary(Unary(NumberLit(5), '-'), '+')},
		{"neg-neg", "--5", Unary(Unary(NumberLit(5), '-'), '-')},
		{"sub-neg", "1--5", Bin(NumberLit(1), Unary(NumberLit(5), '-'), '-')},
		{"neg-mul", "-2 * 3", Bin(Unary(NumberLit(2), '-'), NumberLit(3), '*')},
		{"prec", "1 + 2 * 3", Bin(NumberLit(1), Bin(NumberLit(2), NumberLit(3), '*'), '+')},
		{"prec-left", "2 * 3 + 1", Bin(Bin(NumberLit(2), NumberLit(3), '*'), NumberLit(1), '+')},
		{"group", "(1 + 2) * 3", Bin(Bin(NumberLit(1), NumberLit(2), '+'), NumberLit(3), '*')},
		{"chain-add", "1 + 2 + 3", Bin(Bin(NumberLit(1), NumberLit(2), '+'), NumberLit(3), '+')},
		{"chain-sub", "1 - 2 - 3", Bin(Bin(NumberLit(1), NumberLit(2), '-'), NumberLit(3), '-')},
		{"chain-div", "8 / 4 / 2", Bin(Bin(NumberLit(8), NumberLit(4), '/'), NumberLit(2), '/')},
		{"chain-mixed", "1 + 2 * 3 - 4 / 5", Bin(
			Bin(NumberLit(1), Bin(NumberLit(2), NumberLit(3), '*'), '+'),
			Bin(NumberLit(4), NumberLit(5), '/'),
			'-',
		)},
		{"nospace", "(1+2)*(3-4)", Bin(Bin(NumberLit(1), NumberLit(2), '+'), Bin(NumberLit(3), NumberLit(4), '-'), '*')},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := parseString(t, c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if !n.Equal(c.want) {
				t.Errorf("%q parsed wrong:\n\twant %v\n\tgot  %v", c.src, c.want, n)
			}
		})
	}
}

// TestParseSingleStep covers the grammar that combines one pair per
// precedence level. It differs from the default on chains of three or more
// operands at one level.
func TestParseSingleStep(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *Node
		col  int
	}{
		{"add", "1 + 2", Bin(NumberLit(1), NumberLit(2), '+'), -1},
		{"prec-left", "2 * 3 + 1", Bin(Bin(NumberLit(2), NumberLit(3), '*'), NumberLit(1), '+'), -1},
		{"prec-right", "1 + 2 * 3", Bin(NumberLit(1), Bin(NumberLit(2), NumberLit(3), '*'), '+'), -1},
		{"group", "(1 + 2) + 3", Bin(Bin(NumberLit(1), NumberLit(2), '+'), NumberLit(3), '+'), -1},
		{"chain-add", "1 + 2 + 3", Bin(NumberLit(1), NumberLit(2), '+'), 6},
		{"chain-mul", "2 * 3 * 4", Bin(NumberLit(2), NumberLit(3), '*'), 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := parseString(t, c.src, SingleStep())
			if !n.Equal(c.want) {
				t.Errorf("%q parsed wrong:\n\twant %v\n\tgot  %v", c.src, c.want, n)
			}
			if c.col < 0 {
				if err != nil {
					t.Errorf("%q failed to parse: %v", c.src, err)
				}
				return
			}
			var te *TrailingError
			if !errors.As(err, &te) {
				t.Fatalf("%q gave %v, not a *TrailingError", c.src, err)
			}
			if te.Pos() != c.col {
				t.Errorf("%q: trailing error at %d, want %d", c.src, te.Pos(), c.col)
			}
		})
	}
	// Later options override earlier ones.
	if _, err := parseString(t, "1 + 2 + 3", SingleStep(), Chained()); err != nil {
		t.Errorf("Chained after SingleStep should chain, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		// err is a pointer to the type of the first error.
		err any
		col int
		// none is where the tree holds a None node: "root", "inner", or
		// "" for a complete tree with leftover tokens.
		none string
	}{
		{"empty", "", new(*ExpressionError), 0, "root"},
		{"unclosed", "(1 + 2", new(*BracketError), 6, "root"},
		{"unclosed-inner", "3 * (1 + 2", new(*BracketError), 10, "inner"},
		{"unclosed-empty", "(", new(*ExpressionError), 1, "root"},
		{"wrong-close", "(1 + 2 3)", new(*BracketError), 7, "root"},
		{"close", ")", new(*ExpressionError), 0, "root"},
		{"trailing-close", "1 + 2)", new(*TrailingError), 5, ""},
		{"trailing-num", "1 2", new(*TrailingError), 2, ""},
		{"dangling-op", "1 +", new(*ExpressionError), 3, "inner"},
		{"double-op", "1 + * 2", new(*ExpressionError), 4, "inner"},
		{"never", "$", new(*ExpressionError), 0, "root"},
		{"never-operand", "1 + a", new(*ExpressionError), 4, "inner"},
		{"never-after", "1 a", new(*TrailingError), 2, ""},
		{"empty-parens", "()", new(*ExpressionError), 1, "root"},
		{"unary-end", "-", new(*ExpressionError), 1, "inner"},
		{"runes", "ππ + 1", new(*ExpressionError), 0, "root"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := parseString(t, c.src)
			if err == nil {
				t.Fatalf("%q parsed with no error as %v", c.src, n)
			}
			if n == nil {
				t.Fatalf("%q gave a nil tree", c.src)
			}
			var l ErrorList
			if !errors.As(err, &l) || len(l) == 0 {
				t.Fatalf("%q gave %#v, not a non-empty ErrorList", c.src, err)
			}
			if !errors.As(l[0], c.err) {
				t.Errorf("%q gave %#v first, want %T", c.src, l[0], c.err)
			}
			if l[0].Pos() != c.col {
				t.Errorf("%q: error at %d, want %d", c.src, l[0].Pos(), c.col)
			}
			if len(l) != 1 {
				t.Errorf("%q gave %d errors, want 1: %v", c.src, len(l), err)
			}
			switch c.none {
			case "root":
				if n.Kind != NodeNone {
					t.Errorf("%q gave tree %v, want None at the root", c.src, n)
				}
			case "inner":
				if n.Kind == NodeNone || !n.haskind(NodeNone) {
					t.Errorf("%q gave tree %v, want None below the root", c.src, n)
				}
			default:
				if n.haskind(NodeNone) {
					t.Errorf("%q gave tree %v, want no None", c.src, n)
				}
			}
		})
	}
}

func TestParseTrailingKeepsTree(t *testing.T) {
	// Leftover tokens don't invalidate the parsed part.
	n, err := parseString(t, "1 + 2)")
	if err == nil {
		t.Fatal("no error")
	}
	if want := Bin(NumberLit(1), NumberLit(2), '+'); !n.Equal(want) {
		t.Errorf("want %v, got %v", want, n)
	}
}

func TestParseEndPosition(t *testing.T) {
	// The end of input is after the source, not after the last token.
	src := "(1 + 2   "
	toks, err := Lex(src)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(toks, src)
	var be *BracketError
	if !errors.As(err, &be) {
		t.Fatalf("want *BracketError, got %v", err)
	}
	if be.Pos() != len(src) {
		t.Errorf("error at %d, want %d", be.Pos(), len(src))
	}
	if be.Found.Kind != TokenEnd || be.Open != 0 {
		t.Errorf("wrong error details: %+v", be)
	}
	// Without the source, the token sequence can only place End after the
	// last lexeme.
	if tok := toks.At(len(toks)); tok.Kind != TokenEnd || tok.Pos != 6 {
		t.Errorf("At past the end gave %v, want End at 6", tok)
	}
	p := parser{toks: toks, end: len(src)}
	if tok := p.toks.at(len(toks), p.end); tok.Kind != TokenEnd || tok.Pos != len(src) {
		t.Errorf("parser End is %v, want End at %d", tok, len(src))
	}
	if tok := p.toks.at(1, p.end); tok.Kind != TokenNumber {
		t.Errorf("parser token 1 is %v, want Number", tok)
	}
}

func TestParserCursor(t *testing.T) {
	src := "1 + 2"
	toks, err := Lex(src)
	if err != nil {
		t.Fatal(err)
	}
	p := parser{toks: toks, end: len(src)}
	if tok := p.token(); tok.Kind != TokenNumber {
		t.Errorf("first token is %v", tok)
	}
	for i := 0; i < 10; i++ {
		p.advance()
	}
	if p.cur != len(toks) {
		t.Errorf("cursor advanced past the end to %d", p.cur)
	}
	if tok := p.token(); tok.Kind != TokenEnd || tok.Pos != 5 {
		t.Errorf("token past the end is %v", tok)
	}
}

func TestNodePositions(t *testing.T) {
	n, err := parseString(t, "1 + -2 / 3")
	if err != nil {
		t.Fatal(err)
	}
	if n.Pos != 2 {
		t.Errorf("+ at %d, want 2", n.Pos)
	}
	if n.Right.Pos != 7 {
		t.Errorf("/ at %d, want 7", n.Right.Pos)
	}
	if n.Right.Left.Pos != 4 {
		t.Errorf("unary - at %d, want 4", n.Right.Left.Pos)
	}
	if n.Right.Left.Left.Pos != 5 {
		t.Errorf("2 at %d, want 5", n.Right.Left.Left.Pos)
	}
}

func TestNodeString(t *testing.T) {
	cases := []struct {
		n    *Node
		want string
	}{
		{NumberLit(1), "1"},
		{NumberLit(0.5), "0.5"},
		{Bin(NumberLit(1), NumberLit(2), '+'), "(1 + 2)"},
		{Unary(NumberLit(5), '-'), "-(5)"},
		{Bin(Unary(None(), '+'), NumberLit(2), '*'), "(+($) * 2)"},
		{None(), "$"},
		{Bin(&Node{Kind: 9}, nil, '-'), "(? - ?)"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func TestNodeEqual(t *testing.T) {
	a := Bin(NumberLit(1), Unary(NumberLit(2), '-'), '+')
	b := Bin(NumberLit(1).At(5), Unary(NumberLit(2), '-').At(3), '+').At(9)
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal ignoring positions", a, b)
	}
	c := Bin(NumberLit(1), Unary(NumberLit(2), '+'), '+')
	if a.Equal(c) {
		t.Errorf("%v and %v should differ", a, c)
	}
	if Bin(NumberLit(1), nil, '+').Valid() || (&Node{Kind: 9}).Valid() {
		t.Error("nil and unknown nodes should be invalid")
	}
	if a.Equal(nil) || !(*Node)(nil).Equal(nil) {
		t.Error("nil handling is wrong")
	}
	if !None().Equal(None()) || None().Equal(NumberLit(0)) {
		t.Error("None handling is wrong")
	}
}

func TestGrammarOption(t *testing.T) {
	for _, name := range []string{"", GrammarChain, GrammarSingle} {
		if _, err := GrammarOption(name); err != nil {
			t.Errorf("%q: unexpected error %v", name, err)
		}
	}
	_, err := GrammarOption("lalr")
	var ge *GrammarError
	if !errors.As(err, &ge) || ge.Name != "lalr" {
		t.Errorf("want *GrammarError for lalr, got %v", err)
	}
}
