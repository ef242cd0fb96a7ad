package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"furiganaalign/config"
	"furiganaalign/furigana"
	"furiganaalign/kanji"
	"furiganaalign/logger"
	"furiganaalign/lookup"
)

var (
	configPath string
	logLevel   string
	dump       bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "furiganaalign",
		Short:        "Align kanji readings onto the characters of Japanese words",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "furiganaalign.toml", "config file path")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	root.PersistentFlags().BoolVar(&dump, "dump", false, "write results as JSON files to the log directory")

	root.AddCommand(solveCmd())
	root.AddCommand(sentenceCmd())
	root.AddCommand(batchCmd())
	root.AddCommand(showCmd())
	root.AddCommand(statsCmd())
	return root
}

// app is the state every command starts from.
type app struct {
	cfg config.Config
	log *logger.DefaultLogger
}

func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	a := &app{cfg: cfg, log: logger.New(cmd.ErrOrStderr(), logger.ParseLevel(level))}
	if dump {
		if err := logger.InitLogs(cfg.Log.Dir); err != nil {
			return nil, fmt.Errorf("init log dir: %w", err)
		}
	}
	return a, nil
}

// solver loads the resource files and builds a solver over them.
func (a *app) solver() (*furigana.Solver, error) {
	r := a.cfg.Resources
	rs, err := kanji.LoadResourceSet(r.Kanjidic2, r.Expressions, r.NameKanji)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	st := rs.Stats()
	a.log.Info("resources loaded",
		"kanji", st.Kanji, "name_kanji", st.NameKanji,
		"expressions", st.Expressions, "max_expression_length", st.MaxExprLen)
	return furigana.New(lookup.NewCache(rs),
		furigana.WithMaxSteps(a.cfg.Solver.MaxSteps),
		furigana.WithLogger(a.log),
	), nil
}

// dumpJSON writes v under the log directory when --dump is set.
func (a *app) dumpJSON(name string, v any) {
	if !dump {
		return
	}
	if err := logger.LogJSON(a.cfg.Log.Dir, name, v); err != nil {
		a.log.Warn("failed to write dump", "name", name, "err", err)
	}
}
