package arith

import (
	"errors"
	"strconv"
	"unicode"
)

type lexer struct {
	src  []rune
	pos  int
	errs ErrorList
}

// Lex scans a line of input into tokens. Scanning continues past malformed
// numbers, so the result always holds every token in src; the error is a
// non-nil ErrorList if any number could not be parsed. Characters that begin
// no token are returned as TokenNever for the parser to reject.
func Lex(src string) (Tokens, error) {
	l := lexer{src: []rune(src)}
	var toks Tokens
	for {
		tok := l.next()
		if tok.Kind == TokenEnd {
			break
		}
		toks = append(toks, tok)
	}
	return toks, l.errs.Err()
}

// cur returns the rune under the cursor, or 0 at the end of input.
func (l *lexer) cur() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) skipSpace() {
	for !l.atEnd() && unicode.IsSpace(l.cur()) {
		l.pos++
	}
}

// next scans the next token. At the end of input, the result is an End token.
func (l *lexer) next() Token {
	l.skipSpace()
	if l.atEnd() {
		return endToken(l.pos)
	}
	r := l.cur()
	var kind TokenKind
	switch r {
	case '+':
		kind = TokenPlus
	case '-':
		kind = TokenMinus
	case '*':
		kind = TokenStar
	case '/':
		kind = TokenSlash
	case '(':
		kind = TokenLParen
	case ')':
		kind = TokenRParen
	default:
		if isNumber(r) {
			return l.number()
		}
		kind = TokenNever
	}
	tok := Token{Kind: kind, Lexeme: string(r), Content: CharContent(r), Pos: l.pos}
	l.pos++
	return tok
}

// number scans a run of digits and dots. If the run is not a valid number, it
// records an error and the token's value is 0.
func (l *lexer) number() Token {
	start := l.pos
	for !l.atEnd() && isNumber(l.cur()) {
		l.pos++
	}
	text := string(l.src[start:l.pos])
	// Values too large for float64 are still numbers. ParseFloat gives ±Inf
	// for them along with ErrRange.
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		l.errs = append(l.errs, &NumberError{Col: start, Text: text, Err: err})
		f = 0
	}
	return Token{Kind: TokenNumber, Lexeme: text, Content: NumberContent(f), Pos: start}
}

func isNumber(r rune) bool {
	return r == '.' || unicode.IsDigit(r)
}
