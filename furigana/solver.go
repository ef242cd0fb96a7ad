package furigana

import (
	"context"
	"fmt"

	"furiganaalign/logger"
	"furiganaalign/lookup"
	"furiganaalign/model"
)

// Status is the verdict for one entry.
type Status int

const (
	Unsolved Status = iota
	Solved
	Ambiguous
	BudgetExceeded
)

var statusNames = [...]string{
	Unsolved:       "unsolved",
	Solved:         "solved",
	Ambiguous:      "ambiguous",
	BudgetExceeded: "budget_exceeded",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return Unsolved, fmt.Errorf("unknown status %q", s)
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DefaultMaxSteps bounds the states a single search may expand.
const DefaultMaxSteps = 200000

// Result is the outcome of solving one entry. Only a Solved result carries an
// annotation.
type Result struct {
	Entry   model.Entry            `json:"entry"`
	Status  Status                 `json:"status"`
	Text    *model.TextSolution    `json:"text,omitempty"`
	Parts   []model.Part           `json:"parts,omitempty"`
	Indexed *model.IndexedSolution `json:"indexed,omitempty"`
	// Alternatives lists the distinct solutions of an ambiguous entry.
	Alternatives []model.IndexedSolution `json:"alternatives,omitempty"`
	// Paths counts completed search paths, Invalid those rejected by
	// validation, Steps the states expanded.
	Paths   int `json:"paths"`
	Invalid int `json:"invalid,omitempty"`
	Steps   int `json:"steps"`
}

// Annotated reports whether the result carries an accepted annotation.
func (r Result) Annotated() bool {
	return r.Status == Solved
}

// Solver aligns entries against one candidate cache. It holds no per-entry
// state and may be used from several goroutines.
type Solver struct {
	cache    *lookup.Cache
	maxSteps int
	log      logger.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxSteps bounds the states one search may expand; 0 disables the bound.
func WithMaxSteps(n int) Option {
	return func(s *Solver) { s.maxSteps = n }
}

// WithLogger sets the logger; the default discards output.
func WithLogger(l logger.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// New returns a Solver reading candidates from cache.
func New(cache *lookup.Cache, opts ...Option) *Solver {
	s := &Solver{cache: cache, maxSteps: DefaultMaxSteps, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache returns the candidate cache the solver reads from.
func (s *Solver) Cache() *lookup.Cache {
	return s.cache
}

// Solve builds an entry from the pair and solves it. Malformed pairs return
// an error wrapping one of the model entry errors.
func (s *Solver) Solve(written, reading string, kind model.Kind) (Result, error) {
	e, err := model.NewEntry(written, reading, kind)
	if err != nil {
		return Result{}, err
	}
	return s.SolveEntry(context.Background(), e), nil
}

// SolveEntry searches every decomposition of e and applies the acceptance
// policy. ctx only carries logging attributes; the search itself is bounded
// by the step budget.
func (s *Solver) SolveEntry(ctx context.Context, e model.Entry) Result {
	found := search(e, s.cache, s.maxSteps)
	res := Result{Entry: e, Paths: len(found.paths), Steps: found.steps}

	valid := make([]model.IndexedSolution, 0, len(found.paths))
	for _, path := range found.paths {
		b := newBuilder(e, path)
		if !b.IsValid() {
			res.Invalid++
			s.log.WarnCtx(ctx, "search produced a path that does not spell the entry",
				"written", e.Written, "reading", e.Reading, "pronunciation", b.PronunciationText())
			continue
		}
		idx := b.Indexed()
		if err := Validate(e, idx); err != nil {
			res.Invalid++
			s.log.WarnCtx(ctx, "solution rejected", "written", e.Written, "reading", e.Reading, "err", err)
			continue
		}
		valid = append(valid, idx)
	}

	accepted, alternatives, status := resolve(valid)
	if found.exceeded {
		status = BudgetExceeded
		s.log.DebugCtx(ctx, "search budget exceeded", "written", e.Written, "steps", found.steps)
	}
	res.Status = status
	switch status {
	case Solved:
		text := Format(e, accepted)
		res.Indexed = &accepted
		res.Text = &text
		res.Parts = newBuilder(e, piecesOf(accepted, e.Len())).Merged().Parts
	case Ambiguous:
		res.Alternatives = alternatives
		s.log.DebugCtx(ctx, "ambiguous", "written", e.Written, "reading", e.Reading, "solutions", len(alternatives))
	}
	return res
}

// piecesOf expands an indexed solution back into a full path, filling the
// gaps between spans with one literal piece per character.
func piecesOf(s model.IndexedSolution, n int) []piece {
	var out []piece
	pos := 0
	for _, sp := range s.Sorted().Spans {
		for ; pos < sp.Start; pos++ {
			out = append(out, piece{start: pos, end: pos + 1})
		}
		out = append(out, piece{start: sp.Start, end: sp.End, reading: sp.Reading})
		pos = sp.End
	}
	for ; pos < n; pos++ {
		out = append(out, piece{start: pos, end: pos + 1})
	}
	return out
}
