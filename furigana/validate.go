package furigana

import (
	"errors"
	"fmt"

	"furiganaalign/kana"
	"furiganaalign/model"
)

var (
	// ErrInvalidSolution wraps every validation failure.
	ErrInvalidSolution = errors.New("invalid solution")
	ErrSpanRange       = fmt.Errorf("%w: span out of range", ErrInvalidSolution)
	ErrOverlap         = fmt.Errorf("%w: overlapping spans", ErrInvalidSolution)
	ErrUncovered       = fmt.Errorf("%w: uncovered non-kana character", ErrInvalidSolution)
	ErrRoundTrip       = fmt.Errorf("%w: reading does not round-trip", ErrInvalidSolution)
)

// Validate checks s against e independently of how s was produced: spans lie
// inside the word and do not overlap, every character outside a span is kana,
// and the spans' readings with the kana in between spell the reading of e.
func Validate(e model.Entry, s model.IndexedSolution) error {
	n := e.Len()
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	for i, sp := range s.Spans {
		if sp.Start < 0 || sp.End > n || sp.Start >= sp.End || sp.Reading == "" {
			return fmt.Errorf("span %s: %w", sp, ErrSpanRange)
		}
		for pos := sp.Start; pos < sp.End; pos++ {
			if owner[pos] >= 0 {
				return fmt.Errorf("position %d in %s and %s: %w", pos, s.Spans[owner[pos]], sp, ErrOverlap)
			}
			owner[pos] = i
		}
	}

	var rebuilt []rune
	for pos := 0; pos < n; {
		if i := owner[pos]; i >= 0 {
			sp := s.Spans[i]
			rebuilt = append(rebuilt, []rune(kana.ToHiragana(sp.Reading))...)
			pos = sp.End
			continue
		}
		r := e.Effective[pos]
		if !kana.IsKana(r) {
			return fmt.Errorf("position %d %q: %w", pos, r, ErrUncovered)
		}
		rebuilt = append(rebuilt, kana.ToHiraganaRune(r))
		pos++
	}
	if string(rebuilt) != e.NormalizedReading {
		return fmt.Errorf("%q != %q: %w", string(rebuilt), e.NormalizedReading, ErrRoundTrip)
	}
	return nil
}
