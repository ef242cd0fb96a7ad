// Package dictionary turns JMdict and JMnedict into the (written form,
// reading) pairs the batch command aligns.
package dictionary

import (
	"fmt"
	"io"
	"os"

	jmdict "github.com/yomidevs/jmdict-go"

	"furiganaalign/kana"
	"furiganaalign/model"
)

// Pair is one written form with one of its readings.
type Pair struct {
	Sequence int        `json:"sequence"`
	Written  string     `json:"written"`
	Reading  string     `json:"reading"`
	Kind     model.Kind `json:"kind"`
}

// LoadJMdict reads a JMdict document and returns its vocabulary pairs.
func LoadJMdict(r io.Reader) ([]Pair, error) {
	dict, _, err := jmdict.LoadJmdict(r)
	if err != nil {
		return nil, fmt.Errorf("load jmdict: %w", err)
	}
	var out []Pair
	for _, entry := range dict.Entries {
		kanjiForms := make([]string, 0, len(entry.Kanji))
		for _, k := range entry.Kanji {
			kanjiForms = append(kanjiForms, k.Expression)
		}
		for _, rd := range entry.Readings {
			if rd.NoKanji != nil {
				continue
			}
			out = appendPairs(out, entry.Sequence, kanjiForms, rd.Reading, rd.Restrictions, model.Vocab)
		}
	}
	return out, nil
}

// LoadJMnedict reads a JMnedict document and returns its name pairs.
func LoadJMnedict(r io.Reader) ([]Pair, error) {
	dict, _, err := jmdict.LoadJmnedict(r)
	if err != nil {
		return nil, fmt.Errorf("load jmnedict: %w", err)
	}
	var out []Pair
	for _, entry := range dict.Entries {
		kanjiForms := make([]string, 0, len(entry.Kanji))
		for _, k := range entry.Kanji {
			kanjiForms = append(kanjiForms, k.Expression)
		}
		for _, rd := range entry.Readings {
			out = appendPairs(out, entry.Sequence, kanjiForms, rd.Reading, rd.Restrictions, model.Name)
		}
	}
	return out, nil
}

// appendPairs pairs reading with every kanji form it applies to. A reading
// with restrictions only applies to the listed forms; forms written purely in
// kana need no furigana and are skipped.
func appendPairs(out []Pair, seq int, forms []string, reading string, restr []string, kind model.Kind) []Pair {
	for _, form := range forms {
		if len(restr) > 0 && !contains(restr, form) {
			continue
		}
		if kana.IsAllKana(form) {
			continue
		}
		out = append(out, Pair{Sequence: seq, Written: form, Reading: reading, Kind: kind})
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// LoadFile opens path and loads it with JMdict or JMnedict rules depending
// on kind.
func LoadFile(path string, kind model.Kind) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	if kind == model.Name {
		return LoadJMnedict(f)
	}
	return LoadJMdict(f)
}
