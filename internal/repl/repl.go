// Package repl runs the calculator's interactive loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/config"
	"github.com/zephyrtronium/arith/internal/logs"
)

// REPL evaluates lines and prints their results. Nothing carries over from
// one line to the next.
type REPL struct {
	cfg     *config.Config
	grammar arith.ParseOption
	out     io.Writer
	errw    io.Writer
	diag    *Diagnostics
	log     *logs.Logger
}

// Options holds the outputs of a REPL.
type Options struct {
	// Out receives results and stage displays.
	Out io.Writer
	// Err receives diagnostics.
	Err io.Writer
	// Color enables colored diagnostics.
	Color bool
	// Log receives debug records for each stage. Nil means no logging.
	Log *logs.Logger
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// New creates a REPL with the given configuration.
func New(cfg *config.Config, opts Options) (*REPL, error) {
	grammar, err := cfg.ParseOption()
	if err != nil {
		return nil, err
	}
	if opts.Log == nil {
		opts.Log = logs.Discard()
	}
	return &REPL{
		cfg:     cfg,
		grammar: grammar,
		out:     opts.Out,
		errw:    opts.Err,
		diag:    NewDiagnostics(opts.Color),
		log:     opts.Log,
	}, nil
}

// Run reads and evaluates lines until the input ends, the exit sentinel is
// read, or an interrupt arrives on an empty line. An interrupt with text
// discards the line. A malformed line never stops the loop.
func (r *REPL) Run(in LineReader) error {
	for {
		raw, err := in.ReadLine()
		switch {
		case errors.Is(err, ErrInterrupt):
			if raw == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}
		line := strings.TrimSpace(raw)
		if line == r.cfg.Exit {
			r.log.Debug("exit requested")
			return nil
		}
		if line == "" {
			// Blank lines print nothing rather than an empty-expression error.
			continue
		}
		r.Eval(line)
	}
}

// Eval runs one line through every stage, printing the configured stage
// displays and either the result or the diagnostics of the first failing
// stage. It reports whether the line evaluated without error.
func (r *REPL) Eval(line string) bool {
	toks, err := arith.Lex(line)
	if err != nil {
		return r.fail(line, "lex", err)
	}
	r.log.Debug("lexed", "line", line, "tokens", len(toks))
	if r.cfg.Shows(config.ShowTokens) {
		fmt.Fprintln(r.out, toks)
	}

	tree, err := arith.Parse(toks, line, r.grammar)
	if err != nil {
		return r.fail(line, "parse", err)
	}
	r.log.Debug("parsed", "line", line, "tree", tree.String())
	if r.cfg.Shows(config.ShowAST) {
		fmt.Fprintln(r.out, tree)
	}
	if r.cfg.Shows(config.ShowDump) {
		dumper.Fdump(r.out, tree)
	}

	v, err := arith.Interpret(tree)
	if err != nil {
		return r.fail(line, "interpret", err)
	}
	r.log.Debug("evaluated", "line", line, "value", v)
	fmt.Fprintln(r.out, v)
	return true
}

func (r *REPL) fail(line, stage string, err error) bool {
	r.log.Info("line failed", "line", line, "stage", stage, "err", err)
	if werr := r.diag.RenderAll(r.errw, line, err); werr != nil {
		r.log.Error("writing diagnostic", "err", werr)
	}
	return false
}
