package kanji

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrMalformedLine is returned for a resource line that is not
// "text<TAB>reading[,reading...]".
var ErrMalformedLine = errors.New("malformed resource line")

type tsvRecord struct {
	text     string
	readings []string
}

// readTSV reads "text<TAB>reading,reading" lines, skipping blanks and
// '#' comments.
func readTSV(r io.Reader) ([]tsvRecord, error) {
	var out []tsvRecord
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		text, rest, ok := strings.Cut(line, "\t")
		text = strings.TrimSpace(text)
		if !ok || text == "" {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
		}
		var readings []string
		for _, rd := range strings.Split(rest, ",") {
			if rd = strings.TrimSpace(rd); rd != "" {
				readings = append(readings, rd)
			}
		}
		if len(readings) == 0 {
			return nil, fmt.Errorf("line %d: no readings: %w", lineNo, ErrMalformedLine)
		}
		out = append(out, tsvRecord{text: text, readings: readings})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadExpressions reads special expressions, one per line.
//
//	大人	おとな
//	今日	きょう,こんにち
func LoadExpressions(r io.Reader) ([]SpecialExpression, error) {
	recs, err := readTSV(r)
	if err != nil {
		return nil, fmt.Errorf("load expressions: %w", err)
	}
	out := make([]SpecialExpression, 0, len(recs))
	for _, rec := range recs {
		out = append(out, SpecialExpression{Text: rec.text, Readings: rec.readings})
	}
	return out, nil
}

// LoadNameKanji reads name-specific reading profiles in the same line format
// as LoadExpressions, with a single character as the key. The readings are
// stored as name readings.
func LoadNameKanji(r io.Reader) ([]Kanji, error) {
	recs, err := readTSV(r)
	if err != nil {
		return nil, fmt.Errorf("load name kanji: %w", err)
	}
	out := make([]Kanji, 0, len(recs))
	for i, rec := range recs {
		if utf8.RuneCountInString(rec.text) != 1 {
			return nil, fmt.Errorf("load name kanji: record %d %q: %w", i+1, rec.text, ErrMalformedLine)
		}
		ch, _ := utf8.DecodeRuneInString(rec.text)
		out = append(out, Kanji{Character: ch, Nanori: rec.readings})
	}
	return out, nil
}

// LoadResourceSet loads every configured resource file into a ResourceSet.
// Empty paths are skipped.
func LoadResourceSet(kanjidic2Path, expressionsPath, nameKanjiPath string) (*ResourceSet, error) {
	var (
		chars []Kanji
		names []Kanji
		exprs []SpecialExpression
		err   error
	)
	if kanjidic2Path != "" {
		if chars, err = LoadKanjidic2File(kanjidic2Path); err != nil {
			return nil, err
		}
	}
	if expressionsPath != "" {
		if exprs, err = loadFile(expressionsPath, LoadExpressions); err != nil {
			return nil, err
		}
	}
	if nameKanjiPath != "" {
		if names, err = loadFile(nameKanjiPath, LoadNameKanji); err != nil {
			return nil, err
		}
	}
	return NewResourceSet(chars, names, exprs), nil
}

func loadFile[T any](path string, load func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return load(f)
}
