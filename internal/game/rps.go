package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/rogersnm/labkit/internal/prompt"
)

type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
	Lizard   Move = "lizard"
	Spock    Move = "spock"
)

var Moves = []Move{Scissors, Paper, Rock, Lizard, Spock}

// Beats lists the two moves each move defeats.
var Beats = map[Move][2]Move{
	Scissors: {Paper, Lizard},
	Paper:    {Rock, Spock},
	Rock:     {Scissors, Lizard},
	Lizard:   {Spock, Paper},
	Spock:    {Scissors, Rock},
}

type pair struct{ winner, loser Move }

var descriptions = map[pair]string{
	{Scissors, Paper}:  "Scissors cuts paper.",
	{Paper, Rock}:      "Paper covers rock.",
	{Rock, Lizard}:     "Rock crushes lizard.",
	{Lizard, Spock}:    "Lizard poisons Spock.",
	{Spock, Scissors}:  "Spock smashes scissors.",
	{Scissors, Lizard}: "Scissors decapitates lizard.",
	{Lizard, Paper}:    "Lizard eats paper.",
	{Paper, Spock}:     "Paper disproves Spock.",
	{Spock, Rock}:      "Spock vaporizes rock.",
	{Rock, Scissors}:   "Rock crushes scissors.",
}

type Outcome int

const (
	Draw Outcome = iota
	UserWins
	ComputerWins
)

func ParseMove(s string) (Move, error) {
	m := Move(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Moves, m) {
		return "", fmt.Errorf("choose one of rock, paper, scissors, lizard, spock")
	}
	return m, nil
}

// Decide returns the outcome of one throw and the phrase describing it. A
// draw has no description.
func Decide(user, computer Move) (Outcome, string) {
	if user == computer {
		return Draw, ""
	}
	if b := Beats[user]; b[0] == computer || b[1] == computer {
		return UserWins, descriptions[pair{user, computer}]
	}
	return ComputerWins, descriptions[pair{computer, user}]
}

// ParseTargetScore accepts a positive number of wins.
func ParseTargetScore(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("enter a positive whole number")
	}
	return n, nil
}

// PlayRPS plays throws until one side reaches target wins.
func PlayRPS(p prompt.Prompter, out io.Writer, rng *rand.Rand, target int) (user, computer int, err error) {
	validMove := func(s string) error {
		_, err := ParseMove(s)
		return err
	}
	for user < target && computer < target {
		answer, err := p.Input("Your move (rock/paper/scissors/lizard/spock)", validMove)
		if err != nil {
			return user, computer, err
		}
		um, _ := ParseMove(answer)
		cm := Moves[rng.IntN(len(Moves))]

		outcome, desc := Decide(um, cm)
		fmt.Fprintf(out, "Computer plays: %s\n", cm)
		switch outcome {
		case Draw:
			fmt.Fprintln(out, "Draw!")
		case UserWins:
			fmt.Fprintf(out, "%s You win!\n", desc)
			user++
		case ComputerWins:
			fmt.Fprintf(out, "%s Computer wins!\n", desc)
			computer++
		}
		fmt.Fprintf(out, "Score: you %d, computer %d\n\n", user, computer)
	}
	if user > computer {
		fmt.Fprintln(out, "Congratulations! You won the match!")
	} else {
		fmt.Fprintln(out, "Sorry, you lost the match.")
	}
	return user, computer, nil
}
