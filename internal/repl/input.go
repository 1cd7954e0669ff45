package repl

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrInterrupt is returned by a LineReader when the user interrupts input,
// e.g. with Ctrl-C. The accompanying line holds whatever was typed.
var ErrInterrupt = errors.New("interrupted")

// LineReader supplies input lines. ReadLine returns io.EOF when input ends.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// NewLineReader returns a line editor with history when in is a terminal and
// a plain line scanner otherwise.
func NewLineReader(in *os.File, prompt string) (LineReader, error) {
	if term.IsTerminal(int(in.Fd())) {
		return newEditor(prompt)
	}
	return NewScanner(in), nil
}

type editor struct {
	rl *readline.Instance
}

func newEditor(prompt string) (*editor, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryLimit:    500,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &editor{rl: rl}, nil
}

func (e *editor) ReadLine() (string, error) {
	line, err := e.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return line, ErrInterrupt
	}
	return line, err
}

func (e *editor) Close() error {
	return e.rl.Close()
}

// Scanner reads lines from a non-interactive source without prompting.
type Scanner struct {
	sc *bufio.Scanner
}

// maxLine bounds the length of one line read by a Scanner.
const maxLine = math.MaxInt32

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Scanner{sc: sc}
}

func (s *Scanner) ReadLine() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *Scanner) Close() error {
	return nil
}
