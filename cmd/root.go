package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/labkit/internal/config"
	"github.com/rogersnm/labkit/internal/prompt"
	"github.com/rogersnm/labkit/internal/workspace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version     = "dev"
	dataDirFlag string
	dataDir     string
	cfg         *config.Config
	logger      *zap.Logger
	verbose     bool
	seed        uint64
)

// newPrompter reads answers from the command's input streams.
func newPrompter(cmd *cobra.Command) prompt.Prompter {
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
}

var rootCmd = &cobra.Command{
	Use:     "labkit",
	Short:   "Terminal exercises: number puzzles, word games and record trackers",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		home, _ := os.UserHomeDir()
		dataDir, err = workspace.Resolve(dataDirFlag, cwd, home)
		if err != nil {
			return err
		}

		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger, err = newLogger(cfg.Level())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("resolved data directory", zap.String("dir", dataDir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// newRNG returns a generator seeded from --seed, or randomly when unset.
func newRNG() *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && prompt.IsTerminal(f)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory path (default: nearest .labkit, then ~/.labkit)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed for games (0 picks one)")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"numbers": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Divisors, primality and perfection of the number",
				},
				Examples: []mtp.Example{
					{Description: "Analyze a number", Command: "labkit numbers 28"},
				},
			},
			"bulls": {
				Examples: []mtp.Example{
					{Description: "Play with a 4-digit secret", Command: "labkit bulls --length 4"},
					{Description: "Reproducible game", Command: "labkit bulls --seed 42"},
				},
			},
			"wordle": {
				Examples: []mtp.Example{
					{Description: "Play with the built-in words", Command: "labkit wordle"},
					{Description: "Play with a custom dictionary", Command: "labkit wordle --dict words.md"},
				},
			},
			"rps": {
				Examples: []mtp.Example{
					{Description: "Play to three wins", Command: "labkit rps --target 3"},
				},
			},
			"textstats": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Text to analyze when the file argument is -",
				},
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Character and word counts, most common and longest words",
				},
				Examples: []mtp.Example{
					{Description: "Analyze a file", Command: "labkit textstats essay.txt"},
					{Description: "Analyze piped text with styling", Command: "cat essay.txt | labkit textstats - --pretty"},
				},
			},
			"tasks add": {
				Examples: []mtp.Example{
					{Description: "Add a task", Command: "labkit tasks add \"Buy milk\" --category home"},
				},
			},
			"tasks list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of tasks with ID, description, category and status",
				},
			},
			"tasks done": {
				Examples: []mtp.Example{
					{Description: "Mark task 3 done", Command: "labkit tasks done 3"},
				},
			},
			"tasks search": {
				Examples: []mtp.Example{
					{Description: "Search descriptions and categories", Command: "labkit tasks search milk"},
				},
			},
			"budget add": {
				Examples: []mtp.Example{
					{Description: "Record an expense", Command: "labkit budget add Coffee 4.50 --type expense --category food"},
					{Description: "Record income", Command: "labkit budget add Salary 1000 --type income"},
				},
			},
			"budget balance": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Income minus expenses, two decimal places",
				},
			},
			"plugin run": {
				Examples: []mtp.Example{
					{Description: "Reverse a string", Command: "labkit plugin run reverse Program"},
				},
			},
			"config show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "application/yaml",
					Description: "Effective configuration",
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}
