package analyze

import (
	"context"

	"furiganaalign/furigana"
	"furiganaalign/ingest"
	"furiganaalign/model"
	"furiganaalign/tokenize"
)

// Tokenizer splits a sentence into tokens with readings.
type Tokenizer interface {
	Tokenize(text string) []model.Token
}

// Output is what the pipeline emits for one sentence.
type Output struct {
	Sentence ingest.Sentence
	// Tokens are the tokenizer's tokens before verb merging.
	Tokens   []model.Token
	Analysis Analysis
	Err      error
}

// Pipeline tokenizes and analyzes every sentence received on in. Verb and
// auxiliary tokens are merged before alignment so that 話しました is solved
// as one word. The returned channel is closed once in is closed or ctx is
// done.
func Pipeline(ctx context.Context, solver *furigana.Solver, tok Tokenizer, in <-chan ingest.Sentence) <-chan Output {
	out := make(chan Output, cap(in))
	go func() {
		defer close(out)
		for {
			var s ingest.Sentence
			var ok bool
			select {
			case s, ok = <-in:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
			tokens := tok.Tokenize(s.Text)
			a, err := Analyze(ctx, solver, s, tokenize.MergeVerbAuxiliaries(tokens))
			select {
			case out <- Output{Sentence: s, Tokens: tokens, Analysis: a, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
