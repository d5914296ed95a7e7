package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line reads one answer per line. It is used for pipes, scripts and tests.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (l *Line) readLine() (string, error) {
	s, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimSpace(s), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(l.out)
			return "", fmt.Errorf("%w: %w", ErrAborted, err)
		}
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (l *Line) Input(label string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(l.out, "%s: ", label)
		s, err := l.readLine()
		if err != nil {
			return "", err
		}
		if validate != nil {
			if err := validate(s); err != nil {
				fmt.Fprintf(l.out, "Error: %v\n", err)
				continue
			}
		}
		return s, nil
	}
}

// Text reads a single line; multi-line entry needs the form prompter.
func (l *Line) Text(label string, validate func(string) error) (string, error) {
	return l.Input(label, validate)
}

func (l *Line) Select(title string, options []Option) (string, error) {
	fmt.Fprintln(l.out, title)
	for i, o := range options {
		fmt.Fprintf(l.out, "%d. %s\n", i+1, o.Label)
	}
	for {
		fmt.Fprintf(l.out, "Choose an action (1-%d): ", len(options))
		s, err := l.readLine()
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
			return options[n-1].Value, nil
		}
		for _, o := range options {
			if strings.EqualFold(o.Value, s) {
				return o.Value, nil
			}
		}
		fmt.Fprintf(l.out, "Invalid choice. Enter a number from 1 to %d.\n", len(options))
	}
}

func (l *Line) Confirm(title string) (bool, error) {
	fmt.Fprintf(l.out, "%s (y/n): ", title)
	s, err := l.readLine()
	if err != nil {
		return false, err
	}
	return yes(strings.ToLower(s)), nil
}
