package lookup

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furiganaalign/kanji"
	"furiganaalign/model"
)

func testResources() *kanji.ResourceSet {
	return kanji.NewResourceSet(
		[]kanji.Kanji{
			{Character: '話', Readings: []string{"ワ", "はな.す", "はなし"}},
			{Character: '大', Readings: []string{"ダイ", "タイ", "おお-"}},
			{Character: '人', Readings: []string{"ジン", "ニン", "ひと"}},
			{Character: '秋', Readings: []string{"シュウ", "あき"}, Nanori: []string{"とき"}},
			{Character: '時', Readings: []string{"ジ", "とき"}},
		},
		[]kanji.Kanji{{Character: '秋', Nanori: []string{"あい"}}},
		[]kanji.SpecialExpression{
			{Text: "大人", Readings: []string{"おとな"}},
			{Text: "時々", Readings: []string{"トキドキ"}},
		},
	)
}

func mustEntry(t *testing.T, written, reading string, kind model.Kind) model.Entry {
	t.Helper()
	e, err := model.NewEntry(written, reading, kind)
	require.NoError(t, err)
	return e
}

func TestCandidatesFor_Character(t *testing.T) {
	c := NewCache(testResources())
	e := mustEntry(t, "話す", "はなす", model.Vocab)

	assert.ElementsMatch(t, []string{"わ", "はな", "はなす", "はなし"}, c.CandidatesFor(e, Window{0, 1}))
	assert.Equal(t, []string{"す"}, c.CandidatesFor(e, Window{1, 1}))
	assert.Nil(t, c.CandidatesFor(e, Window{0, 2}), "no expression for 話す")
	assert.Nil(t, c.CandidatesFor(e, Window{1, 5}), "window past the end")
}

func TestCandidatesFor_KatakanaFolds(t *testing.T) {
	c := NewCache(testResources())
	e := mustEntry(t, "大ト", "おおと", model.Vocab)
	assert.Equal(t, []string{"と"}, c.CandidatesFor(e, Window{1, 1}))
}

func TestCandidatesFor_Unknown(t *testing.T) {
	c := NewCache(testResources())
	e := mustEntry(t, "猫Ａ", "ねこ", model.Vocab)
	assert.Empty(t, c.CandidatesFor(e, Window{0, 1}))
	assert.Empty(t, c.CandidatesFor(e, Window{1, 1}))
}

func TestCandidatesFor_Expression(t *testing.T) {
	c := NewCache(testResources())
	e := mustEntry(t, "大人", "おとな", model.Vocab)
	assert.Equal(t, []string{"おとな"}, c.CandidatesFor(e, Window{0, 2}))
	assert.Equal(t, 2, c.MaxWindow())

	e = mustEntry(t, "時々", "ときどき", model.Vocab)
	assert.Equal(t, []string{"ときどき"}, c.CandidatesFor(e, Window{0, 2}))
	// the repeater resolves to 時 for single-character lookups
	assert.Contains(t, c.CandidatesFor(e, Window{1, 1}), "どき")
}

func TestCandidatesFor_Names(t *testing.T) {
	c := NewCache(testResources())
	vocab := mustEntry(t, "秋", "あき", model.Vocab)
	name := mustEntry(t, "秋", "あい", model.Name)

	assert.ElementsMatch(t, []string{"しゅう", "あき"}, c.CandidatesFor(vocab, Window{0, 1}))
	// the name table wins over the general profile
	assert.ElementsMatch(t, []string{"あい"}, c.CandidatesFor(name, Window{0, 1}))

	// no name-specific profile: general readings plus nanori
	toki := mustEntry(t, "時", "とき", model.Name)
	assert.ElementsMatch(t, []string{"じ", "とき"}, c.CandidatesFor(toki, Window{0, 1}))
}

func TestCandidatesFor_Memoized(t *testing.T) {
	c := NewCache(testResources())
	e := mustEntry(t, "大人", "おとな", model.Vocab)
	first := c.CandidatesFor(e, Window{0, 1})
	n := c.Len()
	second := c.CandidatesFor(e, Window{0, 1})
	assert.Equal(t, first, second)
	assert.Equal(t, n, c.Len())

	// a different position is a different key
	other := mustEntry(t, "人大", "ひとだい", model.Vocab)
	assert.Contains(t, c.CandidatesFor(other, Window{1, 1}), "だい")
	assert.Greater(t, c.Len(), n)
}

func TestCandidatesFor_Concurrent(t *testing.T) {
	c := NewCache(testResources())
	e := mustEntry(t, "大人", "おとな", model.Vocab)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := 1; w <= 2; w++ {
				c.CandidatesFor(e, Window{0, w})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, []string{"おとな"}, c.CandidatesFor(e, Window{0, 2}))
}
