// Package prompt asks the user for input, re-asking until the answer passes
// validation.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when input ends or the user cancels a prompt.
var ErrAborted = errors.New("input aborted")

type Option struct {
	Label string
	Value string
}

// Prompter is implemented by the terminal form prompter and the line prompter.
// Returned strings are trimmed; validate sees the trimmed value.
type Prompter interface {
	Input(label string, validate func(string) error) (string, error)
	Text(label string, validate func(string) error) (string, error)
	Select(title string, options []Option) (string, error)
	Confirm(title string) (bool, error)
}

// New returns a form prompter when in is an interactive terminal and a line
// prompter over in/out otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && IsTerminal(f) {
		return &Form{}
	}
	return NewLine(in, out)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// yes reports whether s is an affirmative answer.
func yes(s string) bool {
	switch s {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}
