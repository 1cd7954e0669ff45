package arith

import "unicode/utf8"

// exp    = term { ('+' | '-') term }
// term   = factor { ('*' | '/') factor }
// factor = '(' exp ')' | ('+' | '-') factor | number
//
// With SingleStep, the braces become brackets: each level applies at most once.

type parser struct {
	toks Tokens
	cur  int
	// end is the position of the End token, just past the source line.
	end  int
	errs ErrorList
	parsectx
}

// Parse parses tokens into an expression tree. src is the line the tokens were
// scanned from; it positions the end of input for error reporting.
//
// Parse always returns a tree. Where no expression could be parsed, the tree
// holds a None node and the error is a non-nil ErrorList. Callers should not
// evaluate the tree in that case.
func Parse(toks Tokens, src string, opts ...ParseOption) (*Node, error) {
	p := parser{
		toks: toks,
		end:  utf8.RuneCountInString(src),
	}
	for _, opt := range opts {
		p.parsectx = opt.parseOption(p.parsectx)
	}
	n := p.exp()
	if tok := p.token(); tok.Kind != TokenEnd && len(p.errs) == 0 {
		// A syntax error already explains leftovers, so only report them
		// when the expression was otherwise fine.
		p.fail(&TrailingError{Col: tok.Pos, Found: tok})
	}
	return n, p.errs.Err()
}

// token returns the token under the cursor, or an End token if the cursor is
// past the last token.
func (p *parser) token() Token {
	return p.toks.at(p.cur, p.end)
}

func (p *parser) advance() {
	if p.cur < len(p.toks) {
		p.cur++
	}
}

func (p *parser) fail(err InputError) {
	p.errs = append(p.errs, err)
}

func (p *parser) exp() *Node {
	n := p.term()
	for {
		tok := p.token()
		if tok.Kind != TokenPlus && tok.Kind != TokenMinus {
			return n
		}
		p.advance()
		n = Bin(n, p.term(), tok.Content.Char).At(tok.Pos)
		if p.single {
			return n
		}
	}
}

func (p *parser) term() *Node {
	n := p.factor()
	for {
		tok := p.token()
		if tok.Kind != TokenStar && tok.Kind != TokenSlash {
			return n
		}
		p.advance()
		n = Bin(n, p.factor(), tok.Content.Char).At(tok.Pos)
		if p.single {
			return n
		}
	}
}

func (p *parser) factor() *Node {
	tok := p.token()
	switch tok.Kind {
	case TokenLParen:
		p.advance()
		n := p.exp()
		end := p.token()
		if end.Kind != TokenRParen {
			// Don't pile a bracket error on top of the error that stopped
			// the inner expression short.
			if n.Valid() {
				p.fail(&BracketError{Col: end.Pos, Open: tok.Pos, Found: end})
			}
			return None().At(end.Pos)
		}
		p.advance()
		return n
	case TokenPlus, TokenMinus:
		p.advance()
		return Unary(p.factor(), tok.Content.Char).At(tok.Pos)
	case TokenNumber:
		p.advance()
		return NumberLit(tok.Content.Number).At(tok.Pos)
	default:
		p.fail(&ExpressionError{Col: tok.Pos, Found: tok})
		return None().At(tok.Pos)
	}
}
