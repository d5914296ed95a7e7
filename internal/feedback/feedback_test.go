package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCompute_RepeatedSymbols(t *testing.T) {
	tags, err := Compute([]rune("AAB"), []rune("ABA"))
	require.NoError(t, err)
	assert.Equal(t, []Tag{Exact, Present, Present}, tags)
}

func TestCompute_ExactConsumedBeforePresent(t *testing.T) {
	// The only A in the secret is taken by the exact match at position 2.
	tags, err := Compute([]rune("BBA"), []rune("AAA"))
	require.NoError(t, err)
	assert.Equal(t, []Tag{Absent, Absent, Exact}, tags)
}

func TestCompute_RussianWord(t *testing.T) {
	secret, guess := []rune("лотос"), []rune("сотол")
	tags, err := Compute(secret, guess)
	require.NoError(t, err)
	assert.Equal(t, []Tag{Present, Exact, Exact, Exact, Present}, tags)
	assert.Equal(t, "(с) [о] [т] [о] (л)", Format(guess, tags))
	assert.False(t, Solved(tags))
}

func TestCompute_LengthMismatch(t *testing.T) {
	_, err := Compute([]rune("abc"), []rune("ab"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = CowsBulls([]rune("abc"), []rune("abcd"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCowsBulls_Digits(t *testing.T) {
	cows, bulls, err := CowsBulls([]rune("1234"), []rune("1243"))
	require.NoError(t, err)
	assert.Equal(t, 2, cows)
	assert.Equal(t, 2, bulls)
}

func TestCowsBulls_RepeatedGuessDigits(t *testing.T) {
	cows, bulls, err := CowsBulls([]rune("1234"), []rune("1111"))
	require.NoError(t, err)
	assert.Equal(t, 1, cows)
	assert.Equal(t, 0, bulls)
}

func TestSolved(t *testing.T) {
	tags, err := Compute([]rune("лотос"), []rune("лотос"))
	require.NoError(t, err)
	assert.True(t, Solved(tags))
	assert.False(t, Solved(nil))
}

func TestFormat_Absent(t *testing.T) {
	guess := []rune("abc")
	assert.Equal(t, "[a] (b) c", Format(guess, []Tag{Exact, Present, Absent}))
}

func digitPair(t *rapid.T) ([]int, []int) {
	n := rapid.IntRange(1, 8).Draw(t, "n")
	secret := rapid.SliceOfN(rapid.IntRange(0, 9), n, n).Draw(t, "secret")
	guess := rapid.SliceOfN(rapid.IntRange(0, 9), n, n).Draw(t, "guess")
	return secret, guess
}

func TestProperty_MatchesBoundedBySecretMultiplicity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		secret, guess := digitPair(t)
		tags, err := Compute(secret, guess)
		if err != nil {
			t.Fatalf("compute: %v", err)
		}

		inSecret := map[int]int{}
		for _, s := range secret {
			inSecret[s]++
		}
		used := map[int]int{}
		for i, tag := range tags {
			if tag == Exact && guess[i] != secret[i] {
				t.Fatalf("position %d tagged exact but %d != %d", i, guess[i], secret[i])
			}
			if tag != Absent {
				used[guess[i]]++
			}
		}
		for sym, n := range used {
			if n > inSecret[sym] {
				t.Fatalf("symbol %d matched %d times, secret holds %d", sym, n, inSecret[sym])
			}
		}
	})
}

func TestProperty_CowsBullsAgreesWithTags(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		secret, guess := digitPair(t)
		tags, err := Compute(secret, guess)
		if err != nil {
			t.Fatalf("compute: %v", err)
		}
		cows, bulls, err := CowsBulls(secret, guess)
		if err != nil {
			t.Fatalf("cows bulls: %v", err)
		}
		exact, present := Count(tags)
		if exact != cows || present != bulls {
			t.Fatalf("tags give %d/%d, aggregate gives %d/%d", exact, present, cows, bulls)
		}
	})
}
