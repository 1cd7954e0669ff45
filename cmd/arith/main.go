// Command arith is an interactive calculator for arithmetic expressions.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/arith/internal/config"
	"github.com/zephyrtronium/arith/internal/logs"
	"github.com/zephyrtronium/arith/internal/repl"
)

// flags holds the command line settings that override the config file.
type flags struct {
	configFile string
	grammar    string
	show       []string
	colorMode  string
	logLevel   string
	logFile    string
}

// errFailed reports that at least one argument expression had errors. Its
// diagnostics have already been printed.
var errFailed = errors.New("some expressions failed")

func newRootCmd() *cobra.Command {
	var fl flags
	cmd := &cobra.Command{
		Use:   "arith [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Arith evaluates arithmetic expressions over + - * / and parentheses.

With arguments, each argument is evaluated as one expression. Without
arguments, arith reads expressions line by line until end of input or the
exit command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &fl, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fl.configFile, "config", "", "configuration file (YAML or JSON)")
	f.StringVar(&fl.grammar, "grammar", config.Default().Grammar, `operator chaining: "chain" or "single"`)
	f.StringSliceVar(&fl.show, "show", nil, "stages to print before each result: tokens, ast, dump")
	f.StringVar(&fl.colorMode, "color", config.ColorAuto, "colored diagnostics: auto, always, never")
	f.StringVar(&fl.logLevel, "log-level", config.Default().Log.Level, "minimum log level")
	f.StringVar(&fl.logFile, "log-file", "", "also write JSON logs to this file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "arith: %v\n", err)
		}
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, and applies the flags
// given on the command line over it.
func loadConfig(cmd *cobra.Command, fl *flags) (*config.Config, error) {
	cfg, err := config.Load(fl.configFile)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("grammar") {
		cfg.Grammar = fl.grammar
	}
	if f.Changed("show") {
		cfg.Show = fl.show
	}
	if f.Changed("color") {
		cfg.Color = fl.colorMode
	}
	if f.Changed("log-level") {
		cfg.Log.Level = fl.logLevel
	}
	if f.Changed("log-file") {
		cfg.Log.File = fl.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, fl *flags, args []string) error {
	cfg, err := loadConfig(cmd, fl)
	if err != nil {
		return err
	}
	log, err := logs.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	r, err := repl.New(cfg, repl.Options{
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
		Color: repl.ColorEnabled(cfg.Color, os.Stderr),
		Log:   log,
	})
	if err != nil {
		return err
	}

	if len(args) > 0 {
		ok := true
		for _, arg := range args {
			ok = r.Eval(strings.TrimSpace(arg)) && ok
		}
		if !ok {
			return errFailed
		}
		return nil
	}

	in, err := repl.NewLineReader(os.Stdin, cfg.Prompt)
	if err != nil {
		return err
	}
	defer in.Close()
	log.Debug("starting", "grammar", cfg.Grammar, "show", cfg.Show)
	return r.Run(in)
}
