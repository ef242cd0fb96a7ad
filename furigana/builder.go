package furigana

import (
	"strings"

	"furiganaalign/kana"
	"furiganaalign/model"
)

// builder turns one completed search path into solution forms. It re-derives
// the written and spoken text from its pieces alone, so IsValid does not
// trust the search that produced them.
type builder struct {
	entry  model.Entry
	pieces []piece
}

func newBuilder(e model.Entry, path []piece) *builder {
	b := &builder{entry: e, pieces: make([]piece, 0, len(path))}
	for _, p := range path {
		if p.end <= p.start {
			continue
		}
		if p.reading != "" && p.reading == kana.ToHiragana(string(e.Effective[p.start:p.end])) {
			p.reading = ""
		}
		b.pieces = append(b.pieces, p)
	}
	return b
}

// WrittenText joins the written glyphs of every piece.
func (b *builder) WrittenText() string {
	var sb strings.Builder
	for _, p := range b.pieces {
		sb.WriteString(string(b.entry.Raw[p.start:p.end]))
	}
	return sb.String()
}

// PronunciationText joins each piece's reading, or for literal pieces the
// characters they stand for.
func (b *builder) PronunciationText() string {
	var sb strings.Builder
	for _, p := range b.pieces {
		if p.reading != "" {
			sb.WriteString(p.reading)
		} else {
			sb.WriteString(string(b.entry.Effective[p.start:p.end]))
		}
	}
	return sb.String()
}

func (b *builder) NormalizedPronunciationText() string {
	return kana.ToHiragana(b.PronunciationText())
}

// IsValid reports whether the pieces spell the entry both ways.
func (b *builder) IsValid() bool {
	return b.NormalizedPronunciationText() == b.entry.NormalizedReading &&
		b.WrittenText() == b.entry.Written
}

// Merged returns the parts with consecutive literal pieces joined.
func (b *builder) Merged() model.Solution {
	var parts []model.Part
	for _, p := range b.pieces {
		text := string(b.entry.Raw[p.start:p.end])
		if p.reading == "" && len(parts) > 0 && parts[len(parts)-1].IsLiteral() {
			parts[len(parts)-1].Text += text
			continue
		}
		parts = append(parts, model.Part{Text: text, Furigana: p.reading})
	}
	return model.Solution{Parts: parts}
}

// Indexed returns the annotated pieces as spans.
func (b *builder) Indexed() model.IndexedSolution {
	var out model.IndexedSolution
	for _, p := range b.pieces {
		if p.reading != "" {
			out.Spans = append(out.Spans, model.Span{Reading: p.reading, Start: p.start, End: p.end})
		}
	}
	return out
}
