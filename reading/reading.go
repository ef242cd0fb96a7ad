// Package reading derives the set of strings a character may be pronounced
// as inside a word, expanding dictionary readings with okurigana cuts, verb
// stems, rendaku and gemination.
package reading

import (
	"sort"
	"strings"

	"furiganaalign/kana"
	"furiganaalign/kanji"
)

const (
	affixMarker     = "-"
	okuriganaMarker = "."
)

// PotentialReadings returns every reading k may take at a position of a word.
// isFirst and isLast describe where the character sits; usedInName adds the
// name-only readings. The result is sorted and free of duplicates.
func PotentialReadings(k kanji.Kanji, isFirst, isLast, usedInName bool) []string {
	base := k.Readings
	if usedInName {
		base = append(append([]string(nil), k.Readings...), k.Nanori...)
	}

	set := make(map[string]struct{})
	for _, r := range base {
		// suffix-only readings cannot start a word, prefix-only ones cannot end it
		if isFirst && strings.HasPrefix(r, affixMarker) {
			continue
		}
		if isLast && strings.HasSuffix(r, affixMarker) {
			continue
		}
		r = kana.ToHiragana(strings.Trim(r, affixMarker))
		for _, c := range okurigana(r) {
			if c != "" {
				set[c] = struct{}{}
			}
		}
	}

	if !isFirst {
		for _, c := range keys(set) {
			for _, v := range rendaku(c) {
				set[v] = struct{}{}
			}
		}
	}
	if !isLast {
		for _, c := range keys(set) {
			if g, ok := geminate(c); ok {
				set[g] = struct{}{}
			}
		}
	}
	return keys(set)
}

// okurigana expands "stem.suffix" into the stem, the stem followed by every
// prefix of the suffix, and the masu-stem form when the suffix ends like a
// verb. Readings without a marker are returned as they are.
func okurigana(r string) []string {
	stem, suffix, ok := strings.Cut(r, okuriganaMarker)
	if !ok {
		return []string{r}
	}
	suffix = strings.ReplaceAll(suffix, okuriganaMarker, "")
	out := []string{stem}
	sr := []rune(suffix)
	for i := 1; i <= len(sr); i++ {
		out = append(out, stem+string(sr[:i]))
	}
	if len(sr) > 0 {
		if c, ok := kana.Continuative(sr[len(sr)-1]); ok {
			out = append(out, stem+string(sr[:len(sr)-1])+string(c))
		}
	}
	return out
}

// rendaku returns the voiced variants of c, one per voiced counterpart of its
// first character.
func rendaku(c string) []string {
	rs := []rune(c)
	if len(rs) == 0 {
		return nil
	}
	var out []string
	for _, v := range kana.VoicedForms(rs[0]) {
		out = append(out, string(v)+string(rs[1:]))
	}
	return out
}

// geminate replaces a final つ, く, ち or き with っ.
func geminate(c string) (string, bool) {
	rs := []rune(c)
	if len(rs) == 0 || !kana.IsGeminable(rs[len(rs)-1]) {
		return "", false
	}
	return string(rs[:len(rs)-1]) + string(kana.Sokuon), true
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
