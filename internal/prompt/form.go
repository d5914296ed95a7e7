package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Form prompts with huh widgets on an interactive terminal.
type Form struct{}

func trimmed(validate func(string) error) func(string) error {
	return func(s string) error {
		if validate == nil {
			return nil
		}
		return validate(strings.TrimSpace(s))
	}
}

func (Form) Input(label string, validate func(string) error) (string, error) {
	var v string
	err := huh.NewInput().
		Title(label).
		Value(&v).
		Validate(trimmed(validate)).
		Run()
	return strings.TrimSpace(v), formErr(err)
}

func (Form) Text(label string, validate func(string) error) (string, error) {
	var v string
	err := huh.NewText().
		Title(label).
		Value(&v).
		Validate(trimmed(validate)).
		Run()
	return strings.TrimSpace(v), formErr(err)
}

func (Form) Select(title string, options []Option) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(fmt.Sprintf("%d. %s", i+1, o.Label), o.Value)
	}
	var v string
	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&v).
		Run()
	return v, formErr(err)
}

func (Form) Confirm(title string) (bool, error) {
	var v bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&v).
		Run()
	return v, formErr(err)
}

func formErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return fmt.Errorf("prompt: %w", err)
}
