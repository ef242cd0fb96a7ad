package furigana

import (
	"furiganaalign/model"
)

// Format renders s over the written glyphs of e. Spans keep the original
// glyphs, so 人々 stays 人々 rather than 人人, and every run of characters
// outside a span becomes one literal segment.
func Format(e model.Entry, s model.IndexedSolution) model.TextSolution {
	sorted := s.Sorted()
	var segs []model.Segment
	literalStart := -1
	flush := func(end int) {
		if literalStart >= 0 && literalStart < end {
			segs = append(segs, model.Segment{Text: string(e.Raw[literalStart:end])})
		}
		literalStart = -1
	}
	next := 0
	for pos := 0; pos < len(e.Raw); {
		if next < len(sorted.Spans) && sorted.Spans[next].Start == pos {
			sp := sorted.Spans[next]
			flush(pos)
			segs = append(segs, model.Segment{Text: string(e.Raw[sp.Start:sp.End]), Furigana: sp.Reading})
			pos = sp.End
			next++
			continue
		}
		if literalStart < 0 {
			literalStart = pos
		}
		pos++
	}
	flush(len(e.Raw))
	return model.TextSolution{Segments: segs}
}
