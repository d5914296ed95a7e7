package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/rogersnm/labkit/internal/feedback"
	"github.com/rogersnm/labkit/internal/prompt"
)

// BullsLengths are the secret lengths a player may choose.
var BullsLengths = []int{3, 4, 5}

// NewBullsSecret returns n distinct digits that do not start with zero.
func NewBullsSecret(rng *rand.Rand, n int) string {
	digits := []byte("0123456789")
	rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	if digits[0] == '0' {
		digits[0], digits[1] = digits[1], digits[0]
	}
	return string(digits[:n])
}

// ParseBullsLength validates the length answer.
func ParseBullsLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !slices.Contains(BullsLengths, n) {
		return 0, fmt.Errorf("enter 3, 4 or 5")
	}
	return n, nil
}

// ValidBullsGuess accepts exactly n decimal digits.
func ValidBullsGuess(n int) func(string) error {
	return func(s string) error {
		if len(s) != n || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return fmt.Errorf("enter a number of %d digits", n)
		}
		return nil
	}
}

// PlayBulls runs one round until every digit is in place and returns the
// number of attempts.
func PlayBulls(p prompt.Prompter, out io.Writer, secret string) (int, error) {
	n := len(secret)
	fmt.Fprintf(out, "A %d-digit number has been chosen.\n", n)
	for attempts := 1; ; attempts++ {
		guess, err := p.Input(fmt.Sprintf("Enter a %d-digit number", n), ValidBullsGuess(n))
		if err != nil {
			return 0, err
		}
		cows, bulls, err := feedback.CowsBulls([]rune(secret), []rune(guess))
		if err != nil {
			return 0, err
		}
		if cows == n {
			fmt.Fprintf(out, "You guessed %s in %d attempts!\n", secret, attempts)
			return attempts, nil
		}
		fmt.Fprintf(out, "Found %d cows and %d bulls.\n", cows, bulls)
	}
}
