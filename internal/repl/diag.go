package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/config"
	"golang.org/x/term"
)

// Diagnostics renders input errors as a message followed by the source line
// with a caret under the offending column. Each block starts with a blank
// line:
//
//	Error: can't divide by zero
//
//	 10 / 0
//	    ^
type Diagnostics struct {
	label *color.Color
	caret *color.Color
}

// NewDiagnostics creates a renderer. If colored is false, the output is plain.
func NewDiagnostics(colored bool) *Diagnostics {
	d := &Diagnostics{
		label: color.New(color.FgRed, color.Bold),
		caret: color.New(color.FgYellow, color.Bold),
	}
	if colored {
		d.label.EnableColor()
		d.caret.EnableColor()
	} else {
		d.label.DisableColor()
		d.caret.DisableColor()
	}
	return d
}

// Render writes one diagnostic block for err against the source line src.
func (d *Diagnostics) Render(w io.Writer, src string, err arith.InputError) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(d.label.Sprint("Error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())
	b.WriteString("\n\n ")
	b.WriteString(src)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", err.Pos()+1))
	b.WriteString(d.caret.Sprint("^"))
	b.WriteString("\n")
	_, werr := io.WriteString(w, b.String())
	return werr
}

// RenderAll writes a diagnostic block for every input error in err. Errors
// without positions are written as a bare message.
func (d *Diagnostics) RenderAll(w io.Writer, src string, err error) error {
	var l arith.ErrorList
	if !errors.As(err, &l) {
		var ie arith.InputError
		if errors.As(err, &ie) {
			return d.Render(w, src, ie)
		}
		_, werr := fmt.Fprintf(w, "\n%s %v\n", d.label.Sprint("Error:"), err)
		return werr
	}
	for _, ie := range l {
		if werr := d.Render(w, src, ie); werr != nil {
			return werr
		}
	}
	return nil
}

// ColorEnabled decides whether to color output written to f under a
// config.Color mode.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}
