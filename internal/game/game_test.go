package game

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rogersnm/labkit/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(lines ...string) *prompt.Line {
	return prompt.NewLine(strings.NewReader(strings.Join(lines, "\n")+"\n"), &bytes.Buffer{})
}

func TestSession_Stats(t *testing.T) {
	var s Session
	assert.Equal(t, Stats{}, s.Stats())

	s.Record(5)
	s.Record(2)
	s.Record(8)
	assert.Equal(t, Stats{Games: 3, Best: 2, Worst: 8, Average: 5}, s.Stats())

	var out bytes.Buffer
	s.WriteSummary(&out)
	assert.Contains(t, out.String(), "Games played: 3")
	assert.Contains(t, out.String(), "Average result: 5.0 attempts")
}

func TestSession_EmptySummaryPrintsNothing(t *testing.T) {
	var s Session
	var out bytes.Buffer
	s.WriteSummary(&out)
	assert.Empty(t, out.String())
}

func TestNewBullsSecret(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		for _, n := range BullsLengths {
			s := NewBullsSecret(rng, n)
			require.Len(t, s, n)
			assert.NotEqual(t, byte('0'), s[0])
			seen := map[rune]bool{}
			for _, r := range s {
				assert.False(t, seen[r], "repeated digit in %s", s)
				seen[r] = true
			}
		}
	}
}

func TestParseBullsLength(t *testing.T) {
	n, err := ParseBullsLength("4")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, bad := range []string{"2", "6", "four", ""} {
		_, err := ParseBullsLength(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidBullsGuess(t *testing.T) {
	v := ValidBullsGuess(4)
	assert.NoError(t, v("0123"))
	assert.Error(t, v("123"))
	assert.Error(t, v("12a4"))
	assert.Error(t, v("12345"))
}

func TestPlayBulls(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewLine(strings.NewReader("1243\n12\n5678\n1234\n"), &out)

	attempts, err := PlayBulls(p, &out, "1234")
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, out.String(), "Found 2 cows and 2 bulls.")
	assert.Contains(t, out.String(), "Found 0 cows and 0 bulls.")
	assert.Contains(t, out.String(), "Error: enter a number of 4 digits")
	assert.Contains(t, out.String(), "You guessed 1234 in 3 attempts!")
}

func TestPlayBulls_InputEnds(t *testing.T) {
	_, err := PlayBulls(script("1243"), &bytes.Buffer{}, "1234")
	assert.ErrorIs(t, err, prompt.ErrAborted)
}

func TestValidWordleGuess(t *testing.T) {
	v := ValidWordleGuess(WordLength)
	assert.NoError(t, v("лотос"))
	assert.NoError(t, v("ЛОТОС"))
	assert.Error(t, v("лото"))
	assert.Error(t, v("лот0с"))
}

func TestPlayWordle_Win(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewLine(strings.NewReader("СОТОЛ\nлотос\n"), &out)

	used, won, err := PlayWordle(p, &out, "лотос", WordleAttempts, nil)
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, 2, used)
	assert.Contains(t, out.String(), "Result: (с) [о] [т] [о] (л)")
	assert.Contains(t, out.String(), "Result: [л] [о] [т] [о] [с]")
}

func TestPlayWordle_OutOfAttempts(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewLine(strings.NewReader("весна\nкнига\n"), &out)

	used, won, err := PlayWordle(p, &out, "лотос", 2, nil)
	require.NoError(t, err)
	assert.False(t, won)
	assert.Equal(t, 2, used)
	assert.Contains(t, out.String(), "The word was: лотос")
}

func TestPickWord(t *testing.T) {
	words := []string{"лотос", "весна"}
	w := PickWord(rand.New(rand.NewPCG(1, 1)), words)
	assert.Contains(t, words, w)
}

func TestDecide_EveryPairHasOneWinner(t *testing.T) {
	for _, a := range Moves {
		for _, b := range Moves {
			ab, descAB := Decide(a, b)
			ba, descBA := Decide(b, a)
			if a == b {
				assert.Equal(t, Draw, ab)
				assert.Empty(t, descAB)
				continue
			}
			assert.NotEqual(t, Draw, ab)
			assert.NotEqual(t, ab, ba, "%s vs %s", a, b)
			assert.NotEmpty(t, descAB)
			assert.Equal(t, descAB, descBA)
		}
	}
}

func TestDecide_Examples(t *testing.T) {
	o, desc := Decide(Rock, Scissors)
	assert.Equal(t, UserWins, o)
	assert.Equal(t, "Rock crushes scissors.", desc)

	o, desc = Decide(Rock, Spock)
	assert.Equal(t, ComputerWins, o)
	assert.Equal(t, "Spock vaporizes rock.", desc)
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(" Spock ")
	require.NoError(t, err)
	assert.Equal(t, Spock, m)
	_, err = ParseMove("well")
	assert.Error(t, err)
}

func TestParseTargetScore(t *testing.T) {
	n, err := ParseTargetScore("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = ParseTargetScore("0")
	assert.Error(t, err)
	_, err = ParseTargetScore("-1")
	assert.Error(t, err)
}

func TestPlayRPS_FirstToTarget(t *testing.T) {
	const target = 2
	lines := make([]string, 300)
	for i := range lines {
		lines[i] = "rock"
	}

	// Replay the computer's throws with an identically seeded source.
	mirror := rand.New(rand.NewPCG(3, 5))
	wantUser, wantComputer := 0, 0
	for wantUser < target && wantComputer < target {
		switch o, _ := Decide(Rock, Moves[mirror.IntN(len(Moves))]); o {
		case UserWins:
			wantUser++
		case ComputerWins:
			wantComputer++
		}
	}

	var out bytes.Buffer
	user, computer, err := PlayRPS(script(lines...), &out, rand.New(rand.NewPCG(3, 5)), target)
	require.NoError(t, err)
	assert.Equal(t, wantUser, user)
	assert.Equal(t, wantComputer, computer)
	assert.Equal(t, target, max(user, computer))
	if user > computer {
		assert.Contains(t, out.String(), "You won the match!")
	} else {
		assert.Contains(t, out.String(), "you lost the match.")
	}
}
