package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"furiganaalign/analyze"
	"furiganaalign/batch"
	"furiganaalign/dictionary"
	"furiganaalign/furigana"
	"furiganaalign/ingest"
	"furiganaalign/model"
	"furiganaalign/store"
	"furiganaalign/tokenize"
)

func kindOf(name bool) model.Kind {
	if name {
		return model.Name
	}
	return model.Vocab
}

func solveCmd() *cobra.Command {
	var name bool

	cmd := &cobra.Command{
		Use:   "solve <written> <reading>",
		Short: "Align the reading of one word onto its characters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			solver, err := a.solver()
			if err != nil {
				return err
			}
			res, err := solver.Solve(args[0], args[1], kindOf(name))
			if err != nil {
				return err
			}
			a.dumpJSON("solve_"+res.Entry.Written, res)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%s): %s\n", res.Entry.Written, res.Entry.Reading, res.Entry.Kind, res.Status)
			switch res.Status {
			case furigana.Solved:
				fmt.Fprintln(out, res.Text.Brackets())
				fmt.Fprintln(out, res.Indexed.String())
			case furigana.Ambiguous:
				for _, alt := range res.Alternatives {
					fmt.Fprintf(out, "  %s\n", alt)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&name, "name", false, "treat the word as a proper name")
	return cmd
}

func sentenceCmd() *cobra.Command {
	var stdin bool

	cmd := &cobra.Command{
		Use:   "sentence [text...]",
		Short: "Tokenize sentences and annotate every word that has kanji",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !stdin {
				return errors.New("give a sentence or --stdin")
			}
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			solver, err := a.solver()
			if err != nil {
				return err
			}
			tok, err := tokenize.New(a.cfg.Tokenizer.Dict)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			in := make(chan ingest.Sentence, 100)
			go func() {
				defer close(in)
				feed := func(text string) bool {
					s, err := ingest.IngestSentence(text)
					if err != nil {
						return true
					}
					select {
					case in <- s:
						return true
					case <-ctx.Done():
						return false
					}
				}
				if !stdin {
					feed(strings.Join(args, " "))
					return
				}
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if !feed(sc.Text()) {
						return
					}
				}
				if err := sc.Err(); err != nil {
					a.log.Error("read stdin", "err", err)
				}
			}()

			out := cmd.OutOrStdout()
			for o := range analyze.Pipeline(ctx, solver, tok, in) {
				if o.Err != nil {
					return o.Err
				}
				a.dumpJSON(o.Sentence.ID+"_tokens", o.Tokens)
				a.dumpJSON(o.Sentence.ID+"_analysis", o.Analysis)
				fmt.Fprintln(out, o.Analysis.Furigana)
				a.log.Debug("sentence analyzed", "id", o.Sentence.ID,
					"tokens", o.Analysis.TokenCount, "solved", o.Analysis.Solved,
					"ambiguous", o.Analysis.Ambiguous, "unsolved", o.Analysis.Unsolved)
			}
			return ctx.Err()
		},
	}

	cmd.Flags().BoolVar(&stdin, "stdin", false, "read one sentence per line from stdin")
	return cmd
}

func batchCmd() *cobra.Command {
	var (
		limit       int
		names       bool
		workers     int
		metricsAddr string
		noStore     bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve every pair of JMdict (or JMnedict) and store the verdicts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if workers > 0 {
				a.cfg.Batch.Workers = workers
			}
			if metricsAddr != "" {
				a.cfg.Metrics.Addr = metricsAddr
			}

			solver, err := a.solver()
			if err != nil {
				return err
			}
			path := a.cfg.Dictionary.JMdict
			if names {
				path = a.cfg.Dictionary.JMnedict
			}
			pairs, err := dictionary.LoadFile(path, kindOf(names))
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(pairs) {
				pairs = pairs[:limit]
			}
			a.log.Info("dictionary loaded", "path", path, "pairs", len(pairs))

			reg := prometheus.NewRegistry()
			metrics, err := batch.NewMetrics(reg)
			if err != nil {
				return err
			}
			if a.cfg.Metrics.Addr != "" {
				srv := serveMetrics(a.cfg.Metrics.Addr, reg)
				defer srv.Close()
				a.log.Info("serving metrics", "addr", a.cfg.Metrics.Addr)
			}

			opts := batch.Options{
				Workers: a.cfg.Batch.Workers,
				Metrics: metrics,
				Logger:  a.log,
			}
			if !noStore {
				st, err := store.Open(a.cfg.Store.Path)
				if err != nil {
					return err
				}
				defer st.Close()
				opts.Sink = func(ctx context.Context, o batch.Outcome) error {
					if o.Err != nil {
						return nil
					}
					return st.Save(ctx, store.NewRecord(o.RunID, o.Result))
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			stats, err := batch.Run(ctx, solver, pairs, opts)
			a.dumpJSON("batch_"+stats.RunID, stats)

			fmt.Fprintf(cmd.OutOrStdout(),
				"run %s: %d pairs, %d solved, %d ambiguous, %d unsolved, %d over budget, %d invalid in %s\n",
				stats.RunID, stats.Total, stats.Solved, stats.Ambiguous, stats.Unsolved,
				stats.BudgetExceeded, stats.Invalid, stats.Elapsed.Round(time.Millisecond))
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "solve at most this many pairs")
	cmd.Flags().BoolVar(&names, "names", false, "solve JMnedict names instead of JMdict words")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (overrides config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "do not write verdicts to the store")
	return cmd
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return srv
}

func showCmd() *cobra.Command {
	var name bool

	cmd := &cobra.Command{
		Use:   "show <written> <reading>",
		Short: "Show the stored verdict for a word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			st, err := store.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Get(cmd.Context(), args[0], args[1], kindOf(name))
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%s %s: %w", args[0], args[1], err)
			}
			if err != nil {
				return err
			}
			a.dumpJSON("show_"+rec.Written, rec)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%s): %s\n", rec.Written, rec.Reading, rec.Kind, rec.Status)
			if rec.Furigana != "" {
				fmt.Fprintln(out, rec.Furigana)
				fmt.Fprintln(out, rec.Indexed)
			}
			if rec.Alternatives > 0 {
				fmt.Fprintf(out, "%d alternatives\n", rec.Alternatives)
			}
			fmt.Fprintf(out, "run %s at %s\n", rec.RunID, rec.UpdatedAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().BoolVar(&name, "name", false, "look up the name entry")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count stored verdicts by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			st, err := store.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			counts, err := st.CountByStatus(cmd.Context())
			if err != nil {
				return err
			}
			statuses := make([]furigana.Status, 0, len(counts))
			for s := range counts {
				statuses = append(statuses, s)
			}
			sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
			for _, s := range statuses {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %d\n", s, counts[s])
			}
			return nil
		},
	}
}
