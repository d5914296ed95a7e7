// Package feedback compares a guess against a secret position by position.
package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when secret and guess differ in length.
var ErrInvalidArgument = errors.New("invalid argument")

type Tag int

const (
	Absent Tag = iota
	Present
	Exact
)

func (t Tag) String() string {
	switch t {
	case Exact:
		return "exact"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Compute tags every position of guess. Exact matches are consumed first so a
// symbol is never reported more times than it occurs in secret.
func Compute[T comparable](secret, guess []T) ([]Tag, error) {
	if len(secret) != len(guess) {
		return nil, fmt.Errorf("%w: secret has %d symbols, guess has %d", ErrInvalidArgument, len(secret), len(guess))
	}

	remaining := make(map[T]int, len(secret))
	for _, s := range secret {
		remaining[s]++
	}

	tags := make([]Tag, len(guess))
	tagged := make([]bool, len(guess))
	for i, g := range guess {
		if g == secret[i] {
			tags[i] = Exact
			tagged[i] = true
			remaining[g]--
		}
	}
	for i, g := range guess {
		if tagged[i] {
			continue
		}
		if remaining[g] > 0 {
			tags[i] = Present
			remaining[g]--
		} else {
			tags[i] = Absent
		}
	}
	return tags, nil
}

// CowsBulls reports the aggregate form: cows are symbols in the right place,
// bulls are shared symbols in the wrong place.
func CowsBulls[T comparable](secret, guess []T) (cows, bulls int, err error) {
	if len(secret) != len(guess) {
		return 0, 0, fmt.Errorf("%w: secret has %d symbols, guess has %d", ErrInvalidArgument, len(secret), len(guess))
	}

	secretCounts := make(map[T]int, len(secret))
	guessCounts := make(map[T]int, len(guess))
	for i := range secret {
		if secret[i] == guess[i] {
			cows++
		}
		secretCounts[secret[i]]++
		guessCounts[guess[i]]++
	}
	shared := 0
	for sym, n := range guessCounts {
		shared += min(n, secretCounts[sym])
	}
	return cows, shared - cows, nil
}

// Count totals exact and present tags.
func Count(tags []Tag) (exact, present int) {
	for _, t := range tags {
		switch t {
		case Exact:
			exact++
		case Present:
			present++
		}
	}
	return exact, present
}

// Solved reports whether every position is an exact match.
func Solved(tags []Tag) bool {
	for _, t := range tags {
		if t != Exact {
			return false
		}
	}
	return len(tags) > 0
}

// Format renders guess with [x] for exact, (x) for present and a bare x for absent.
func Format(guess []rune, tags []Tag) string {
	parts := make([]string, len(guess))
	for i, r := range guess {
		switch tags[i] {
		case Exact:
			parts[i] = "[" + string(r) + "]"
		case Present:
			parts[i] = "(" + string(r) + ")"
		default:
			parts[i] = string(r)
		}
	}
	return strings.Join(parts, " ")
}
