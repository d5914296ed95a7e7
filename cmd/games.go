package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rogersnm/labkit/internal/game"
	"github.com/rogersnm/labkit/internal/markdown"
	"github.com/rogersnm/labkit/internal/numbers"
	"github.com/rogersnm/labkit/internal/prompt"
	"github.com/rogersnm/labkit/internal/words"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var numbersCmd = &cobra.Command{
	Use:   "numbers [n]",
	Short: "Show divisors of a number and whether it is prime or perfect",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw string
		if len(args) == 1 {
			raw = args[0]
		} else {
			var err error
			raw, err = newPrompter(cmd).Input("Enter a positive integer", func(s string) error {
				_, err := numbers.Parse(s)
				return err
			})
			if err != nil {
				return err
			}
		}
		n, err := numbers.Parse(raw)
		if err != nil {
			return err
		}
		r, err := numbers.Analyze(n)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), r.String())
		return nil
	},
}

var bullsCmd = &cobra.Command{
	Use:   "bulls",
	Short: "Guess a secret number of distinct digits",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd)
		out := cmd.OutOrStdout()
		rng := newRNG()

		length, _ := cmd.Flags().GetInt("length")
		if length == 0 {
			answer, err := p.Input("Choose the number length (3, 4 or 5)", func(s string) error {
				_, err := game.ParseBullsLength(s)
				return err
			})
			if err != nil {
				return err
			}
			length, _ = game.ParseBullsLength(answer)
		} else if !slices.Contains(game.BullsLengths, length) {
			return fmt.Errorf("--length must be 3, 4 or 5")
		}

		var session game.Session
		for {
			secret := game.NewBullsSecret(rng, length)
			logger.Debug("new bulls round", zap.Int("length", length))
			attempts, err := game.PlayBulls(p, out, secret)
			if err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					break
				}
				return err
			}
			session.Record(attempts)
			again, err := p.Confirm("Play again?")
			if err != nil && !errors.Is(err, prompt.ErrAborted) {
				return err
			}
			if !again {
				break
			}
		}
		session.WriteSummary(out)
		return nil
	},
}

var wordleCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Guess a five-letter word in six attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary(cmd)
		if err != nil {
			return err
		}
		p := newPrompter(cmd)
		out := cmd.OutOrStdout()
		rng := newRNG()

		var format game.FormatFunc
		if isTerminal(out) {
			format = markdown.RenderFeedback
		}

		var session game.Session
		played := 0
		for {
			secret := game.PickWord(rng, dict.Words)
			logger.Debug("new wordle round", zap.String("dictionary", dict.Name))
			attempts, won, err := game.PlayWordle(p, out, secret, cfg.Attempts(), format)
			if err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					break
				}
				return err
			}
			played++
			if won {
				session.Record(attempts)
			}
			again, err := p.Confirm("Play again?")
			if err != nil && !errors.Is(err, prompt.ErrAborted) {
				return err
			}
			if !again {
				break
			}
		}
		if played > 0 {
			fmt.Fprintf(out, "\nRounds won: %d of %d\n", session.Stats().Games, played)
		}
		session.WriteSummary(out)
		return nil
	},
}

// loadDictionary picks --dict, then the configured dictionary, then the
// built-in words.
func loadDictionary(cmd *cobra.Command) (*words.Dictionary, error) {
	path, _ := cmd.Flags().GetString("dict")
	if path == "" {
		path = cfg.DictionaryPath(dataDir)
	}
	if path == "" {
		return words.Default(), nil
	}
	d, err := words.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	return d, nil
}

var rpsCmd = &cobra.Command{
	Use:   "rps",
	Short: "Play rock-paper-scissors-lizard-spock against the computer",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd)
		out := cmd.OutOrStdout()

		target, _ := cmd.Flags().GetInt("target")
		if target <= 0 {
			answer, err := p.Input("Play to how many wins", func(s string) error {
				_, err := game.ParseTargetScore(s)
				return err
			})
			if err != nil {
				return err
			}
			target, _ = game.ParseTargetScore(answer)
		}

		user, computer, err := game.PlayRPS(p, out, newRNG(), target)
		if err != nil && !errors.Is(err, prompt.ErrAborted) {
			return err
		}
		logger.Debug("rps match finished", zap.Int("user", user), zap.Int("computer", computer))
		return nil
	},
}

func init() {
	bullsCmd.Flags().IntP("length", "l", 0, "secret length (3, 4 or 5); asks when unset")
	wordleCmd.Flags().String("dict", "", "dictionary file (markdown with frontmatter)")
	rpsCmd.Flags().IntP("target", "t", 0, "wins needed to take the match; asks when unset")

	rootCmd.AddCommand(numbersCmd)
	rootCmd.AddCommand(bullsCmd)
	rootCmd.AddCommand(wordleCmd)
	rootCmd.AddCommand(rpsCmd)
}
