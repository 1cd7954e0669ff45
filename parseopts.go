package arith

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings for one parse.
type parsectx struct {
	// single indicates that each precedence level combines at most one pair
	// of operands, so that "1 + 2 + 3" leaves "+ 3" unparsed.
	single bool
}

type grammaropt bool

// SingleStep makes each precedence level combine at most one pair of
// operands. "2 * 3 + 1" still parses, as a product then a sum, but "1 + 2 + 3"
// is rejected at the second +.
func SingleStep() ParseOption {
	return grammaropt(true)
}

// Chained makes each precedence level combine any number of operands with
// left associativity, so "1 - 2 - 3" is "(1 - 2) - 3". This is the default.
func Chained() ParseOption {
	return grammaropt(false)
}

func (o grammaropt) parseOption(p parsectx) parsectx {
	p.single = bool(o)
	return p
}

// Grammar names for GrammarOption.
const (
	GrammarChain  = "chain"
	GrammarSingle = "single"
)

// GrammarOption returns the parse option for a grammar name, either
// GrammarChain or GrammarSingle. The empty string means GrammarChain.
func GrammarOption(name string) (ParseOption, error) {
	switch name {
	case "", GrammarChain:
		return Chained(), nil
	case GrammarSingle:
		return SingleStep(), nil
	default:
		return nil, &GrammarError{Name: name}
	}
}

// GrammarError is an error from GrammarOption for an unknown grammar name.
type GrammarError struct {
	Name string
}

func (err *GrammarError) Error() string {
	return "unknown grammar " + strconv.Quote(err.Name) + " (want " + GrammarChain + " or " + GrammarSingle + ")"
}
