// Package config loads the TOML configuration shared by the CLI commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the decoded configuration file.
type Config struct {
	Resources  Resources  `toml:"resources"`
	Dictionary Dictionary `toml:"dictionary"`
	Tokenizer  Tokenizer  `toml:"tokenizer"`
	Solver     Solver     `toml:"solver"`
	Batch      Batch      `toml:"batch"`
	Store      Store      `toml:"store"`
	Log        Log        `toml:"log"`
	Metrics    Metrics    `toml:"metrics"`
}

// Resources points at the lexical resource files.
type Resources struct {
	Kanjidic2   string `toml:"kanjidic2"`
	Expressions string `toml:"expressions"`
	NameKanji   string `toml:"name_kanji"`
}

// Dictionary points at the word lists solved by the batch command.
type Dictionary struct {
	JMdict   string `toml:"jmdict"`
	JMnedict string `toml:"jmnedict"`
}

// Tokenizer selects the kagome system dictionary: "ipa" or "uni".
type Tokenizer struct {
	Dict string `toml:"dict"`
}

// Solver bounds a single search.
type Solver struct {
	MaxSteps int `toml:"max_steps"`
}

// Batch configures the worker pool.
type Batch struct {
	Workers int `toml:"workers"`
}

// Store is the sqlite results database.
type Store struct {
	Path string `toml:"path"`
}

// Log configures the logger and the JSON dump directory.
type Log struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

// Metrics is the optional prometheus listen address.
type Metrics struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Resources: Resources{
			Kanjidic2:   "dict/kanjidic2.xml",
			Expressions: "dict/special_expressions.tsv",
		},
		Dictionary: Dictionary{
			JMdict:   "dict/JMdict_e",
			JMnedict: "dict/JMnedict.xml",
		},
		Tokenizer: Tokenizer{Dict: "ipa"},
		Solver:    Solver{MaxSteps: 200000},
		Batch:     Batch{Workers: 4},
		Store:     Store{Path: "furigana.db"},
		Log:       Log{Level: "info", Dir: "logs"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no command can run with.
func (c Config) Validate() error {
	switch c.Tokenizer.Dict {
	case "ipa", "uni":
	default:
		return fmt.Errorf("tokenizer.dict must be ipa or uni, got %q", c.Tokenizer.Dict)
	}
	if c.Solver.MaxSteps < 0 {
		return fmt.Errorf("solver.max_steps must not be negative")
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1")
	}
	return nil
}

// Save writes c to path as TOML.
func Save(path string, c Config) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
