package kana

// rendaku maps an unvoiced leading kana onto its voiced (and, for the h-row,
// semi-voiced) forms.
var rendaku = map[rune][]rune{
	'か': {'が'}, 'き': {'ぎ'}, 'く': {'ぐ'}, 'け': {'げ'}, 'こ': {'ご'},
	'さ': {'ざ'}, 'し': {'じ'}, 'す': {'ず'}, 'せ': {'ぜ'}, 'そ': {'ぞ'},
	'た': {'だ'}, 'ち': {'ぢ', 'じ'}, 'つ': {'づ', 'ず'}, 'て': {'で'}, 'と': {'ど'},
	'は': {'ば', 'ぱ'}, 'ひ': {'び', 'ぴ'}, 'ふ': {'ぶ', 'ぷ'}, 'へ': {'べ', 'ぺ'}, 'ほ': {'ぼ', 'ぽ'},
}

// unvoiced is the inverse of rendaku. じ and ず map back to し and す.
var unvoiced = map[rune]rune{
	'が': 'か', 'ぎ': 'き', 'ぐ': 'く', 'げ': 'け', 'ご': 'こ',
	'ざ': 'さ', 'じ': 'し', 'ず': 'す', 'ぜ': 'せ', 'ぞ': 'そ',
	'だ': 'た', 'ぢ': 'ち', 'づ': 'つ', 'で': 'て', 'ど': 'と',
	'ば': 'は', 'び': 'ひ', 'ぶ': 'ふ', 'べ': 'へ', 'ぼ': 'ほ',
	'ぱ': 'は', 'ぴ': 'ひ', 'ぷ': 'ふ', 'ぺ': 'へ', 'ぽ': 'ほ',
}

// continuative pairs a dictionary-form verb ending with its masu-stem ending.
var continuative = map[rune]rune{
	'う': 'い', 'く': 'き', 'ぐ': 'ぎ', 'す': 'し', 'つ': 'ち',
	'ぬ': 'に', 'ぶ': 'び', 'む': 'み', 'る': 'り',
}

// geminable lists the endings that turn into っ before a following consonant.
var geminable = map[rune]struct{}{
	'つ': {}, 'く': {}, 'ち': {}, 'き': {},
}

// VoicedForms returns the rendaku counterparts of the hiragana r, or nil.
func VoicedForms(r rune) []rune {
	return rendaku[r]
}

// Continuative returns the masu-stem ending paired with a dictionary-form
// verb ending.
func Continuative(r rune) (rune, bool) {
	c, ok := continuative[r]
	return c, ok
}

// IsGeminable reports whether r may be replaced by っ inside a compound.
func IsGeminable(r rune) bool {
	_, ok := geminable[r]
	return ok
}
