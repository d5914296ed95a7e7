package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	FileName          = "config.yaml"
	DefaultTasksFile  = "tasks.json"
	DefaultBudgetFile = "budget.json"
	DefaultLogLevel   = "warn"
)

type Config struct {
	TasksFile      string `yaml:"tasks_file,omitempty"`
	BudgetFile     string `yaml:"budget_file,omitempty"`
	Dictionary     string `yaml:"dictionary,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
	WordleAttempts int    `yaml:"wordle_attempts,omitempty"`
}

// Path returns the config file location inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

func Load(dataDir string) (*Config, error) {
	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.WordleAttempts < 0 {
		return nil, fmt.Errorf("parsing config: wordle_attempts must be positive")
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(Path(dataDir), data, 0644)
}

// Defaults returns a config with every field set explicitly.
func Defaults() *Config {
	return &Config{
		TasksFile:      DefaultTasksFile,
		BudgetFile:     DefaultBudgetFile,
		LogLevel:       DefaultLogLevel,
		WordleAttempts: 6,
	}
}

// TasksPath resolves the tasks file against dataDir.
func (c *Config) TasksPath(dataDir string) string {
	return resolve(dataDir, c.TasksFile, DefaultTasksFile)
}

// BudgetPath resolves the budget file against dataDir.
func (c *Config) BudgetPath(dataDir string) string {
	return resolve(dataDir, c.BudgetFile, DefaultBudgetFile)
}

// DictionaryPath resolves the dictionary file against dataDir. It is empty
// when the built-in word list should be used.
func (c *Config) DictionaryPath(dataDir string) string {
	if c.Dictionary == "" {
		return ""
	}
	return resolve(dataDir, c.Dictionary, "")
}

func (c *Config) Level() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

func (c *Config) Attempts() int {
	if c.WordleAttempts <= 0 {
		return 6
	}
	return c.WordleAttempts
}

func resolve(dataDir, name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}
