package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_InputReasksUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("abc\n  42  \n"), &out)

	got, err := p.Input("Number", func(s string) error {
		if s != "42" {
			return errors.New("enter 42")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "42", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Number: "))
	assert.Contains(t, out.String(), "Error: enter 42")
}

func TestLine_InputWithoutTrailingNewline(t *testing.T) {
	p := NewLine(strings.NewReader("last"), &bytes.Buffer{})
	got, err := p.Input("Word", nil)
	require.NoError(t, err)
	assert.Equal(t, "last", got)
}

func TestLine_EOFAborts(t *testing.T) {
	p := NewLine(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Input("Word", nil)
	assert.ErrorIs(t, err, ErrAborted)

	_, err = p.Confirm("Again?")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestLine_SelectByNumberOrValue(t *testing.T) {
	opts := []Option{{Label: "Add", Value: "add"}, {Label: "Quit", Value: "quit"}}
	var out bytes.Buffer
	p := NewLine(strings.NewReader("9\nx\n2\nADD\n"), &out)

	got, err := p.Select("Menu:", opts)
	require.NoError(t, err)
	assert.Equal(t, "quit", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice. Enter a number from 1 to 2."))
	assert.Contains(t, out.String(), "1. Add\n2. Quit\n")

	got, err = p.Select("Menu:", opts)
	require.NoError(t, err)
	assert.Equal(t, "add", got)
}

func TestLine_Confirm(t *testing.T) {
	for in, want := range map[string]bool{"y\n": true, "YES\n": true, "да\n": true, "Д\n": true, "n\n": false, "\n": false} {
		p := NewLine(strings.NewReader(in), &bytes.Buffer{})
		got, err := p.Confirm("Play again?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestNew_NonTerminalIsLine(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	_, ok := p.(*Line)
	assert.True(t, ok)
}
