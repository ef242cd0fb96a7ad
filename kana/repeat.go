package kana

// Iteration marks.
const (
	KanjiRepeater     = '々'
	VerticalRepeater  = '〻'
	HiraganaRepeater  = 'ゝ'
	HiraganaRepeaterV = 'ゞ'
	KatakanaRepeater  = 'ヽ'
	KatakanaRepeaterV = 'ヾ'
)

// IsKanjiRepeater reports whether r repeats the previous ideograph.
func IsKanjiRepeater(r rune) bool {
	return r == KanjiRepeater || r == VerticalRepeater
}

// IsKanaRepeater reports whether r is a kana iteration mark.
func IsKanaRepeater(r rune) bool {
	switch r {
	case HiraganaRepeater, HiraganaRepeaterV, KatakanaRepeater, KatakanaRepeaterV:
		return true
	}
	return false
}

// IsRepeater reports whether r is any iteration mark.
func IsRepeater(r rune) bool {
	return IsKanjiRepeater(r) || IsKanaRepeater(r)
}

// ExpandRepeaters returns a copy of raw where every iteration mark is replaced
// by the character it stands for. The result has the same length as raw.
//
// A lone 々 repeats the previous character. Two consecutive 々 following at
// least two characters repeat those two characters in order (部分々々). Kana
// marks repeat the previous kana; the voiced forms voice it.
func ExpandRepeaters(raw []rune) []rune {
	out := make([]rune, len(raw))
	for i := 0; i < len(raw); i++ {
		r := raw[i]
		switch {
		case IsKanjiRepeater(r):
			if i+1 < len(raw) && IsKanjiRepeater(raw[i+1]) && i >= 2 &&
				!IsKanjiRepeater(raw[i-1]) && !IsKanjiRepeater(raw[i-2]) {
				out[i] = out[i-2]
				out[i+1] = out[i-1]
				i++
				continue
			}
			if i > 0 {
				out[i] = out[i-1]
			} else {
				out[i] = r
			}
		case r == HiraganaRepeater || r == KatakanaRepeater:
			if i > 0 && IsKana(out[i-1]) {
				out[i] = unvoice(out[i-1])
			} else {
				out[i] = r
			}
		case r == HiraganaRepeaterV || r == KatakanaRepeaterV:
			if i > 0 && IsKana(out[i-1]) {
				out[i] = voice(out[i-1])
			} else {
				out[i] = r
			}
		default:
			out[i] = r
		}
	}
	return out
}

// voice returns the first voiced counterpart of r, or r itself.
func voice(r rune) rune {
	h := ToHiraganaRune(r)
	if v, ok := rendaku[h]; ok {
		if h != r {
			return v[0] + 0x60
		}
		return v[0]
	}
	return r
}

// unvoice maps a voiced kana back onto its plain form; ゝ after が reads か.
func unvoice(r rune) rune {
	h := ToHiraganaRune(r)
	if p, ok := unvoiced[h]; ok {
		if h != r {
			return p + 0x60
		}
		return p
	}
	return r
}
