// Package analyze runs the sentence pipeline: every token that contains
// kanji and carries a reading is aligned, and the sentence gets a summary of
// how many words were annotated.
package analyze

import (
	"context"
	"errors"

	"furiganaalign/furigana"
	"furiganaalign/ingest"
	"furiganaalign/kana"
	"furiganaalign/model"
)

// Analysis is the furigana view of one sentence.
type Analysis struct {
	SentenceID string        `json:"sentence_id"`
	Text       string        `json:"text"`
	TokenCount int           `json:"token_count"`
	Solved     int           `json:"solved"`
	Ambiguous  int           `json:"ambiguous"`
	Unsolved   int           `json:"unsolved"`
	Skipped    int           `json:"skipped"`
	Tokens     []model.Token `json:"tokens"`
	// Furigana is the whole sentence in bracket notation.
	Furigana string `json:"furigana"`
}

// Analyze aligns each token of the sentence. Tokens without kanji or without
// a reading are copied through. It stops early when ctx is cancelled.
func Analyze(ctx context.Context, solver *furigana.Solver, sentence ingest.Sentence, tokens []model.Token) (Analysis, error) {
	a := Analysis{
		SentenceID: sentence.ID,
		Text:       sentence.Text,
		TokenCount: len(tokens),
		Tokens:     make([]model.Token, 0, len(tokens)),
	}
	var furi []byte
	for _, tk := range tokens {
		if err := ctx.Err(); err != nil {
			return a, err
		}
		if !kana.HasKanji(tk.Text) || tk.Reading == "" {
			a.Skipped++
			furi = append(furi, tk.Text...)
			a.Tokens = append(a.Tokens, tk)
			continue
		}
		res, err := solver.Solve(tk.Text, tk.Reading, model.Vocab)
		switch {
		case errors.Is(err, model.ErrUnsupportedReading), errors.Is(err, model.ErrNoKanji):
			a.Skipped++
			furi = append(furi, tk.Text...)
			a.Tokens = append(a.Tokens, tk)
			continue
		case err != nil:
			return a, err
		}
		tk.FuriganaStatus = res.Status.String()
		switch res.Status {
		case furigana.Solved:
			a.Solved++
			tk.Segments = res.Text.Segments
			tk.FuriganaText = res.Text.Brackets()
			furi = append(furi, tk.FuriganaText...)
		case furigana.Ambiguous:
			a.Ambiguous++
			furi = append(furi, tk.Text...)
		default:
			a.Unsolved++
			furi = append(furi, tk.Text...)
		}
		a.Tokens = append(a.Tokens, tk)
	}
	a.Furigana = string(furi)
	return a, nil
}
