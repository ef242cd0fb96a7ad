package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"furiganaalign/kana"
)

// Kind tells whether an entry is ordinary vocabulary or a proper name. Name
// entries may use name-only readings.
type Kind int

const (
	Vocab Kind = iota
	Name
)

func (k Kind) String() string {
	if k == Name {
		return "name"
	}
	return "vocab"
}

// ParseKind maps "vocab" and "name" back onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "vocab", "":
		return Vocab, nil
	case "name":
		return Name, nil
	}
	return Vocab, fmt.Errorf("unknown entry kind %q", s)
}

var (
	// ErrEmpty is returned when the written form or the reading is blank.
	ErrEmpty = errors.New("empty written form or reading")
	// ErrNoKanji is returned for a written form made only of kana; it needs
	// no furigana.
	ErrNoKanji = errors.New("written form has no non-phonetic character")
	// ErrUnsupportedReading is returned when the reading holds a character
	// that is not a single kana unit.
	ErrUnsupportedReading = errors.New("reading contains an unsupported character")
)

// Entry is one (written form, reading) pair to align. Build it with NewEntry.
type Entry struct {
	Written string `json:"written"`
	Reading string `json:"reading"`
	Kind    Kind   `json:"kind"`
	// NormalizedReading is Reading folded to hiragana; every comparison
	// during alignment uses it.
	NormalizedReading string `json:"normalized_reading"`
	// Raw holds the written glyphs, Effective the same glyphs with iteration
	// marks replaced by what they repeat. Both have the same length.
	Raw       []rune `json:"-"`
	Effective []rune `json:"-"`

	reading []rune
}

// NewEntry validates and canonicalizes a pair. Both strings are trimmed and
// NFC-composed so decomposed dakuten fold onto precomposed kana.
func NewEntry(written, reading string, kind Kind) (Entry, error) {
	written = norm.NFC.String(strings.TrimSpace(written))
	reading = norm.NFC.String(strings.TrimSpace(reading))
	if written == "" || reading == "" {
		return Entry{}, ErrEmpty
	}
	if err := checkReading(reading); err != nil {
		return Entry{}, fmt.Errorf("%q: %w", reading, err)
	}
	raw := []rune(written)
	effective := kana.ExpandRepeaters(raw)
	hasNonKana := false
	for _, r := range effective {
		if !kana.IsKana(r) {
			hasNonKana = true
			break
		}
	}
	if !hasNonKana {
		return Entry{}, fmt.Errorf("%q: %w", written, ErrNoKanji)
	}
	normalized := kana.ToHiragana(reading)
	return Entry{
		Written:           written,
		Reading:           reading,
		Kind:              kind,
		NormalizedReading: normalized,
		Raw:               raw,
		Effective:         effective,
		reading:           []rune(normalized),
	}, nil
}

func checkReading(reading string) error {
	for _, r := range reading {
		switch {
		case r > 0xFFFF:
			return ErrUnsupportedReading
		case unicode.Is(unicode.Mn, r):
			return ErrUnsupportedReading
		case !kana.IsKana(r):
			return ErrUnsupportedReading
		}
	}
	return nil
}

// IsName reports whether name readings apply.
func (e Entry) IsName() bool {
	return e.Kind == Name
}

// ReadingRunes returns the normalized reading as runes. The slice is shared;
// callers must not modify it.
func (e Entry) ReadingRunes() []rune {
	return e.reading
}

// Len is the number of characters in the written form.
func (e Entry) Len() int {
	return len(e.Effective)
}

func (e Entry) String() string {
	return e.Written + "【" + e.Reading + "】"
}
