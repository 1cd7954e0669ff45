package arith

import (
	"strconv"
	"strings"
)

// Token is a single lexical unit of an input line.
type Token struct {
	// Kind is the token's classification.
	Kind TokenKind
	// Lexeme is the exact source text the token was scanned from. It is empty
	// for End tokens.
	Lexeme string
	// Content is the token's value: the character of an operator, bracket, or
	// unrecognized token, or the parsed value of a number.
	Content Content
	// Pos is the zero-based rune offset of the token's start in the source.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Lexeme + "@" + strconv.Itoa(t.Pos)
}

// TokenKind classifies tokens.
type TokenKind int8

const (
	// TokenNever is a character the lexer does not recognize. The parser
	// rejects it wherever it appears.
	TokenNever TokenKind = iota
	// TokenNumber is a run of digits and dots.
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
	// TokenEnd marks the end of the input. The lexer never returns it; the
	// parser synthesizes it past the last token.
	TokenEnd
)

var tokenKindNames = [...]string{
	TokenNever:  "Never",
	TokenNumber: "Number",
	TokenPlus:   "Plus",
	TokenMinus:  "Minus",
	TokenStar:   "Star",
	TokenSlash:  "Slash",
	TokenLParen: "LParen",
	TokenRParen: "RParen",
	TokenEnd:    "End",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// ContentKind tags the variant held in a Content.
type ContentKind int8

const (
	ContentNone ContentKind = iota
	ContentChar
	ContentNumber
)

// Content is the value carried by a token. Exactly one of Char or Number is
// meaningful, according to Kind.
type Content struct {
	Kind   ContentKind
	Char   rune
	Number float64
}

// CharContent creates character content.
func CharContent(r rune) Content {
	return Content{Kind: ContentChar, Char: r}
}

// NumberContent creates numeric content.
func NumberContent(f float64) Content {
	return Content{Kind: ContentNumber, Number: f}
}

func (c Content) String() string {
	switch c.Kind {
	case ContentChar:
		return strconv.QuoteRune(c.Char)
	case ContentNumber:
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	default:
		return "none"
	}
}

// Tokens is the token sequence of one input line, in source order.
type Tokens []Token

// At returns the token at index i. Past either end of the sequence, the
// result is an End token positioned just after the last token's lexeme.
// Tokens do not record trailing whitespace, so this can be before the end of
// the source line; Parse knows the line and places its End token after it.
func (ts Tokens) At(i int) Token {
	return ts.at(i, ts.end())
}

// at is At with the End token placed at end.
func (ts Tokens) at(i, end int) Token {
	if i >= 0 && i < len(ts) {
		return ts[i]
	}
	return endToken(end)
}

// end is the position just past the last token.
func (ts Tokens) end() int {
	if len(ts) == 0 {
		return 0
	}
	last := ts[len(ts)-1]
	return last.Pos + len([]rune(last.Lexeme))
}

func (ts Tokens) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range ts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.Kind.String())
		if t.Kind == TokenNumber {
			b.WriteByte('(')
			b.WriteString(t.Content.String())
			b.WriteByte(')')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func endToken(pos int) Token {
	return Token{Kind: TokenEnd, Pos: pos}
}
