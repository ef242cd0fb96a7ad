package furigana

import (
	"testing"

	"github.com/stretchr/testify/require"

	"furiganaalign/kanji"
	"furiganaalign/lookup"
	"furiganaalign/model"
)

// testKanji uses kanjidic2 readings for the characters the tests need.
var testKanji = []kanji.Kanji{
	{Character: '大', Readings: []string{"ダイ", "タイ", "おお-", "おお.きい", "おお.いに"}},
	{Character: '人', Readings: []string{"ジン", "ニン", "ひと", "-り", "-と"}},
	{Character: '話', Readings: []string{"ワ", "はな.す", "はなし"}},
	{Character: '真', Readings: []string{"シン", "ま", "ま-", "まこと"}},
	{Character: '青', Readings: []string{"セイ", "ショウ", "あお", "あお-", "あお.い"}},
	{Character: '手', Readings: []string{"シュ", "ズ", "て", "て-", "-で", "-た"}},
	{Character: '紙', Readings: []string{"シ", "かみ"}},
	{Character: '局', Readings: []string{"キョク"}},
	{Character: '学', Readings: []string{"ガク", "まな.ぶ"}},
	{Character: '校', Readings: []string{"コウ", "キョウ"}},
	{Character: '秋', Readings: []string{"シュウ", "あき"}, Nanori: []string{"とき"}},
	{Character: '時', Readings: []string{"ジ", "とき"}},
	// made-up profiles that make 甲乙 read かきく two ways
	{Character: '甲', Readings: []string{"か", "かき"}},
	{Character: '乙', Readings: []string{"きく", "く"}},
}

var testExpressions = []kanji.SpecialExpression{
	{Text: "大人", Readings: []string{"おとな"}},
	{Text: "真っ青", Readings: []string{"まっさお"}},
}

func newTestSolver(opts ...Option) *Solver {
	rs := kanji.NewResourceSet(testKanji, nil, testExpressions)
	return New(lookup.NewCache(rs), opts...)
}

func mustEntry(t *testing.T, written, reading string) model.Entry {
	t.Helper()
	e, err := model.NewEntry(written, reading, model.Vocab)
	require.NoError(t, err)
	return e
}
