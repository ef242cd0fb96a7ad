// Package kanji is the lexical resource model: per-character reading
// profiles, fixed multi-character expressions and the ResourceSet lookup
// surface the aligner reads from.
package kanji

import (
	"unicode/utf8"
)

// Kanji is the reading profile of one ideographic character. Readings use the
// kanjidic2 notation: katakana for on'yomi, hiragana for kun'yomi, "-" marking
// affix-only readings and "." separating the stem from its okurigana.
type Kanji struct {
	Character rune     `json:"character"`
	Readings  []string `json:"readings"`
	Nanori    []string `json:"nanori,omitempty"`
}

// SpecialExpression is a fixed span of text whose readings cannot be built
// from its characters.
type SpecialExpression struct {
	Text     string   `json:"text"`
	Readings []string `json:"readings"`
}

// Length returns the number of characters the expression spans.
func (e SpecialExpression) Length() int {
	return utf8.RuneCountInString(e.Text)
}

// ResourceSet maps characters to reading profiles and exact text to special
// expressions. It is read-only once built and safe for concurrent readers.
type ResourceSet struct {
	kanji       map[rune]Kanji
	nameKanji   map[rune]Kanji
	expressions map[string]SpecialExpression
	maxExprLen  int
}

// Stats summarises the size of a ResourceSet.
type Stats struct {
	Kanji       int `json:"kanji"`
	NameKanji   int `json:"name_kanji"`
	Expressions int `json:"expressions"`
	MaxExprLen  int `json:"max_expression_length"`
}

// NewResourceSet builds a ResourceSet. nameKanji holds profiles that replace
// the general profile when the word being solved is a proper name; it may be
// nil. Later expressions with the same text merge their readings into the
// earlier one.
func NewResourceSet(kanji, nameKanji []Kanji, expressions []SpecialExpression) *ResourceSet {
	rs := &ResourceSet{
		kanji:       make(map[rune]Kanji, len(kanji)),
		nameKanji:   make(map[rune]Kanji, len(nameKanji)),
		expressions: make(map[string]SpecialExpression, len(expressions)),
		maxExprLen:  1,
	}
	for _, k := range kanji {
		rs.kanji[k.Character] = k
	}
	for _, k := range nameKanji {
		rs.nameKanji[k.Character] = k
	}
	for _, e := range expressions {
		if prev, ok := rs.expressions[e.Text]; ok {
			e.Readings = appendUnique(prev.Readings, e.Readings...)
		}
		rs.expressions[e.Text] = e
		if n := e.Length(); n > rs.maxExprLen {
			rs.maxExprLen = n
		}
	}
	return rs
}

// LookupCharacter returns the general reading profile of r.
func (rs *ResourceSet) LookupCharacter(r rune) (Kanji, bool) {
	k, ok := rs.kanji[r]
	return k, ok
}

// LookupNameCharacter returns the name-specific profile of r, if one exists.
func (rs *ResourceSet) LookupNameCharacter(r rune) (Kanji, bool) {
	k, ok := rs.nameKanji[r]
	return k, ok
}

// LookupExpression returns the special expression spelled exactly text.
func (rs *ResourceSet) LookupExpression(text string) (SpecialExpression, bool) {
	e, ok := rs.expressions[text]
	return e, ok
}

// MaxExpressionLength is the character length of the longest expression key,
// and at least 1. It bounds the window lengths worth looking up.
func (rs *ResourceSet) MaxExpressionLength() int {
	return rs.maxExprLen
}

// Stats reports table sizes.
func (rs *ResourceSet) Stats() Stats {
	return Stats{
		Kanji:       len(rs.kanji),
		NameKanji:   len(rs.nameKanji),
		Expressions: len(rs.expressions),
		MaxExprLen:  rs.maxExprLen,
	}
}

func appendUnique(dst []string, values ...string) []string {
	out := append([]string(nil), dst...)
	for _, v := range values {
		found := false
		for _, d := range out {
			if d == v {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return out
}
