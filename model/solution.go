package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Part is one piece of a solution: base text plus the reading assigned to it.
// A part without furigana is a literal run of kana.
type Part struct {
	Text     string `json:"text"`
	Furigana string `json:"furigana,omitempty"`
}

// IsLiteral reports whether the part carries no reading.
func (p Part) IsLiteral() bool {
	return p.Furigana == ""
}

// Solution is an ordered list of parts covering a written form.
type Solution struct {
	Parts []Part `json:"parts"`
}

// Span assigns Reading to the effective characters [Start, End).
type Span struct {
	Reading string `json:"reading"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

func (s Span) String() string {
	if s.End-s.Start == 1 {
		return strconv.Itoa(s.Start) + ":" + s.Reading
	}
	return strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End-1) + ":" + s.Reading
}

// IndexedSolution is the compact form of a solution: only annotated spans,
// each located by character indices.
type IndexedSolution struct {
	Spans []Span `json:"spans"`
}

// Equal reports whether both solutions hold the same set of spans,
// regardless of order.
func (s IndexedSolution) Equal(o IndexedSolution) bool {
	if len(s.Spans) != len(o.Spans) {
		return false
	}
	for _, a := range s.Spans {
		if !o.has(a) {
			return false
		}
	}
	for _, b := range o.Spans {
		if !s.has(b) {
			return false
		}
	}
	return true
}

func (s IndexedSolution) has(sp Span) bool {
	for _, x := range s.Spans {
		if x == sp {
			return true
		}
	}
	return false
}

// Sorted returns a copy with spans ordered by start index.
func (s IndexedSolution) Sorted() IndexedSolution {
	spans := append([]Span(nil), s.Spans...)
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	return IndexedSolution{Spans: spans}
}

// String renders the spans as "0:はな;2-3:さお", ordered by start.
func (s IndexedSolution) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted.Spans))
	for i, sp := range sorted.Spans {
		parts[i] = sp.String()
	}
	return strings.Join(parts, ";")
}

// ErrBadIndexed is returned by ParseIndexed for malformed input.
var ErrBadIndexed = errors.New("malformed indexed solution")

// ParseIndexed reads the format produced by IndexedSolution.String.
func ParseIndexed(s string) (IndexedSolution, error) {
	var out IndexedSolution
	if s == "" {
		return out, nil
	}
	for _, field := range strings.Split(s, ";") {
		pos, reading, ok := strings.Cut(field, ":")
		if !ok || reading == "" {
			return IndexedSolution{}, fmt.Errorf("%q: %w", field, ErrBadIndexed)
		}
		from, to, isRange := strings.Cut(pos, "-")
		start, err := strconv.Atoi(from)
		if err != nil {
			return IndexedSolution{}, fmt.Errorf("%q: %w", field, ErrBadIndexed)
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(to); err != nil {
				return IndexedSolution{}, fmt.Errorf("%q: %w", field, ErrBadIndexed)
			}
		}
		if start < 0 || end < start {
			return IndexedSolution{}, fmt.Errorf("%q: %w", field, ErrBadIndexed)
		}
		out.Spans = append(out.Spans, Span{Reading: reading, Start: start, End: end + 1})
	}
	return out, nil
}

// Segment is one renderable piece of the final annotation.
type Segment struct {
	Text     string `json:"text"`
	Furigana string `json:"furigana,omitempty"`
}

// TextSolution is the accepted annotation over the written glyphs.
type TextSolution struct {
	Segments []Segment `json:"segments"`
}

// Written concatenates the literal text of every segment.
func (t TextSolution) Written() string {
	var b strings.Builder
	for _, s := range t.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Pronunciation concatenates furigana, falling back to the literal text.
func (t TextSolution) Pronunciation() string {
	var b strings.Builder
	for _, s := range t.Segments {
		if s.Furigana != "" {
			b.WriteString(s.Furigana)
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Brackets formats the segments as "[話|はな]す".
func (t TextSolution) Brackets() string {
	var b strings.Builder
	for _, s := range t.Segments {
		if s.Furigana != "" {
			b.WriteString("[" + s.Text + "|" + s.Furigana + "]")
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Ruby formats the segments as HTML ruby markup.
func (t TextSolution) Ruby() string {
	var b strings.Builder
	for _, s := range t.Segments {
		if s.Furigana != "" {
			b.WriteString("<ruby>" + s.Text + "<rt>" + s.Furigana + "</rt></ruby>")
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
