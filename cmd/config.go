package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/labkit/internal/config"
	"github.com/rogersnm/labkit/internal/editor"
	"github.com/rogersnm/labkit/internal/words"
	"github.com/rogersnm/labkit/internal/workspace"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const sampleDictionary = "words.md"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .labkit data directory in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir, err := workspace.Init(cwd)
		if err != nil {
			return err
		}
		if _, err := os.Stat(config.Path(dir)); errors.Is(err, os.ErrNotExist) {
			if err := config.Save(dir, config.Defaults()); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}
		sample := filepath.Join(dir, sampleDictionary)
		if _, err := os.Stat(sample); errors.Is(err, os.ErrNotExist) {
			if err := words.Save(sample, words.Default()); err != nil {
				return fmt.Errorf("writing sample dictionary: %w", err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", dir)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit labkit configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		effective := &config.Config{
			TasksFile:      cfg.TasksPath(dataDir),
			BudgetFile:     cfg.BudgetPath(dataDir),
			Dictionary:     cfg.DictionaryPath(dataDir),
			LogLevel:       cfg.Level(),
			WordleAttempts: cfg.Attempts(),
		}
		data, err := yaml.Marshal(effective)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# data dir: %s\n", dataDir)
		fmt.Fprint(out, string(data))
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config.yaml in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path(dataDir)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := config.Save(dataDir, config.Defaults()); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}
		if err := editor.Open(path); err != nil {
			return err
		}
		if _, err := config.Load(dataDir); err != nil {
			return fmt.Errorf("config no longer valid: %w", err)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
}
