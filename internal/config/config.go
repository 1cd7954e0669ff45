// Package config loads calculator settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/zephyrtronium/arith"
)

// Stage display names for Config.Show.
const (
	ShowTokens = "tokens"
	ShowAST    = "ast"
	ShowDump   = "dump"
)

// Color modes for Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings for the calculator front end.
type Config struct {
	// Prompt is printed before each line in interactive sessions.
	Prompt string `json:"prompt"`
	// Exit is the line that ends the session.
	Exit string `json:"exit"`
	// Grammar is arith.GrammarChain or arith.GrammarSingle.
	Grammar string `json:"grammar"`
	// Show lists intermediate stages to print before each result.
	Show []string `json:"show"`
	// Color is ColorAuto, ColorAlways, or ColorNever.
	Color string `json:"color"`
	Log   Log    `json:"log"`
}

// Log holds logging settings.
type Log struct {
	// Level is debug, info, warn, or error.
	Level string `json:"level"`
	// File, if not empty, receives JSON logs in addition to the terminal.
	File string `json:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Prompt:  "> ",
		Exit:    "exit",
		Grammar: arith.GrammarChain,
		Color:   ColorAuto,
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads a configuration file over the defaults. An empty path gives the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every enumerated setting has a known value.
func (c *Config) Validate() error {
	var errs []error
	if _, err := arith.GrammarOption(c.Grammar); err != nil {
		errs = append(errs, err)
	}
	for _, s := range c.Show {
		switch s {
		case ShowTokens, ShowAST, ShowDump:
		default:
			errs = append(errs, fmt.Errorf("unknown stage %s to show", strconv.Quote(s)))
		}
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("unknown color mode %s", strconv.Quote(c.Color)))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Exit == "" {
		errs = append(errs, errors.New("exit sentinel must not be empty"))
	}
	return errors.Join(errs...)
}

// Shows reports whether the stage is listed in Show.
func (c *Config) Shows(stage string) bool {
	for _, s := range c.Show {
		if s == stage {
			return true
		}
	}
	return false
}

// ParseOption returns the parse option for the configured grammar.
func (c *Config) ParseOption() (arith.ParseOption, error) {
	return arith.GrammarOption(c.Grammar)
}

// ParseLevel parses a log level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %s", strconv.Quote(s))
	}
	return l, nil
}
