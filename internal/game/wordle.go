package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rogersnm/labkit/internal/feedback"
	"github.com/rogersnm/labkit/internal/prompt"
)

const (
	WordLength     = 5
	WordleAttempts = 6
)

// ValidWordleGuess accepts exactly length letters.
func ValidWordleGuess(length int) func(string) error {
	return func(s string) error {
		if utf8.RuneCountInString(s) != length {
			return fmt.Errorf("enter a word of exactly %d letters", length)
		}
		if strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
			return fmt.Errorf("the word must contain letters only")
		}
		return nil
	}
}

// PickWord chooses the secret for one round.
func PickWord(rng *rand.Rand, words []string) string {
	return words[rng.IntN(len(words))]
}

// FormatFunc renders the feedback for one guess.
type FormatFunc func(guess []rune, tags []feedback.Tag) string

// PlayWordle gives the player attempts tries at secret. It returns the number
// of attempts used and whether the word was found. A nil format prints plain
// feedback.Format output.
func PlayWordle(p prompt.Prompter, out io.Writer, secret string, attempts int, format FormatFunc) (int, bool, error) {
	if format == nil {
		format = feedback.Format
	}
	length := utf8.RuneCountInString(secret)
	fmt.Fprintf(out, "A %d-letter word has been chosen. You have %d attempts.\n", length, attempts)
	for i := 1; i <= attempts; i++ {
		guess, err := p.Input(fmt.Sprintf("Attempt %d", i), ValidWordleGuess(length))
		if err != nil {
			return i, false, err
		}
		guess = strings.ToLower(guess)
		tags, err := feedback.Compute([]rune(secret), []rune(guess))
		if err != nil {
			return i, false, err
		}
		fmt.Fprintf(out, "Result: %s\n", format([]rune(guess), tags))
		if feedback.Solved(tags) {
			fmt.Fprintf(out, "You guessed the word %q in %d attempts!\n", secret, i)
			return i, true, nil
		}
	}
	fmt.Fprintf(out, "Out of attempts. The word was: %s\n", secret)
	return attempts, false, nil
}
