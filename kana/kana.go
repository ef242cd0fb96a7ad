// Package kana holds the phonetic character helpers shared by the furigana
// aligner: classification, katakana folding and the phonological tables used
// to derive candidate readings.
package kana

import "strings"

const (
	// ProlongedSoundMark is the katakana-hiragana prolonged sound mark ー.
	ProlongedSoundMark = 'ー'
	// Sokuon is the small tsu used as a gemination marker.
	Sokuon = 'っ'
)

// IsHiragana reports whether r is in the hiragana block proper.
func IsHiragana(r rune) bool {
	return r >= 0x3041 && r <= 0x3096
}

// IsKatakana reports whether r is a katakana letter.
func IsKatakana(r rune) bool {
	return r >= 0x30A1 && r <= 0x30FA
}

// IsKana returns true if r is a phonetic character: hiragana, katakana or the
// prolonged sound mark. Kana iteration marks are not kana on their own; they
// are resolved to the character they repeat first.
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r) || r == ProlongedSoundMark
}

// IsKanji returns true for CJK ideographs, including the extension A and
// compatibility blocks and the ideographic closing mark 〆.
func IsKanji(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r >= 0x3400 && r <= 0x4DBF:
		return true
	case r >= 0xF900 && r <= 0xFAFF:
		return true
	case r == '〆' || r == '〇':
		return true
	}
	return false
}

// IsAllKana reports whether every rune of s is kana. The empty string is not.
func IsAllKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) && !IsKanaRepeater(r) {
			return false
		}
	}
	return true
}

// HasKanji reports whether s contains at least one ideograph.
func HasKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) || IsKanjiRepeater(r) {
			return true
		}
	}
	return false
}

// ToHiraganaRune folds a katakana letter onto its hiragana counterpart.
// Runes without a counterpart are returned unchanged.
func ToHiraganaRune(r rune) rune {
	if r >= 0x30A1 && r <= 0x30F6 {
		return r - 0x60
	}
	return r
}

// ToHiragana converts katakana to hiragana, leaving everything else as is.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = ToHiraganaRune(r)
	}
	return string(runes)
}

// ToKatakana is the inverse of ToHiragana for the foldable range.
func ToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x3041 && r <= 0x3096 {
			runes[i] = r + 0x60
		}
	}
	return string(runes)
}

// StripMarkers removes the kanjidic2 affix and okurigana markers from a
// reading ("-か", "か-", "はな.す").
func StripMarkers(s string) string {
	return strings.NewReplacer("-", "", ".", "").Replace(s)
}
