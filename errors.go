package arith

import "strconv"

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the zero-based rune offset in the source line of the token
	// that caused the error.
	Pos() int
}

// NumberError indicates a run of digits and dots that is not a number, e.g.
// "1.2.3". It implements InputError.
type NumberError struct {
	// Col is the position of the start of the run.
	Col int
	// Text is the scanned run.
	Text string
	// Err is the error from parsing Text.
	Err error
}

func (err *NumberError) Error() string {
	return "couldn't parse number " + strconv.Quote(err.Text)
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// BracketError indicates an open parenthesis without a matching close. It
// implements InputError.
type BracketError struct {
	// Col is the position of the token found in place of the close bracket.
	Col int
	// Open is the position of the unmatched open bracket.
	Open int
	// Found is the token found in place of the close bracket.
	Found Token
}

func (err *BracketError) Error() string {
	return "expected ')' to close '(' at column " + strconv.Itoa(err.Open+1) + ", found " + describe(err.Found)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ExpressionError indicates that no expression could be formed where one was
// required, e.g. at the end of input, after an operator, or at a character
// the lexer did not recognize. It implements InputError.
type ExpressionError struct {
	// Col is the position of the offending token.
	Col int
	// Found is the offending token.
	Found Token
}

func (err *ExpressionError) Error() string {
	return "couldn't find expression node at " + describe(err.Found)
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// TrailingError indicates input left over after a complete expression. It
// implements InputError.
type TrailingError struct {
	// Col is the position of the first unparsed token.
	Col int
	// Found is the first unparsed token.
	Found Token
}

func (err *TrailingError) Error() string {
	return "unexpected " + describe(err.Found) + " after expression"
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// DivisionError indicates division by zero. The division evaluates to 0. It
// implements InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionError) Error() string {
	return "can't divide by zero"
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// NodeError indicates an attempt to evaluate a None node, i.e. a tree from a
// failed parse. The node evaluates to 0. It implements InputError.
type NodeError struct {
	// Col is the position where parsing failed.
	Col int
}

func (err *NodeError) Error() string {
	return "couldn't interpret node"
}

func (err *NodeError) Pos() int {
	return err.Col
}

// describe names a token for error messages.
func describe(tok Token) string {
	if tok.Kind == TokenEnd {
		return "end of input"
	}
	return strconv.Quote(tok.Lexeme)
}

// ErrorList is the list of errors found by one stage of evaluation, in the
// order they were found.
type ErrorList []InputError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	case 2:
		return l[0].Error() + " (and 1 more error)"
	default:
		return l[0].Error() + " (and " + strconv.Itoa(len(l)-1) + " more errors)"
	}
}

// Unwrap returns the errors in the list so that errors.Is and errors.As can
// inspect them.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, err := range l {
		errs[i] = err
	}
	return errs
}

// Err returns l as an error, or nil if l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*NodeError)(nil)
)
