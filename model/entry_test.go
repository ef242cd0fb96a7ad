package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(" 話す ", "ハナス", Vocab)
	require.NoError(t, err)
	assert.Equal(t, "話す", e.Written)
	assert.Equal(t, "ハナス", e.Reading)
	assert.Equal(t, "はなす", e.NormalizedReading)
	assert.Equal(t, []rune("話す"), e.Raw)
	assert.Equal(t, []rune("話す"), e.Effective)
	assert.Equal(t, []rune("はなす"), e.ReadingRunes())
	assert.False(t, e.IsName())
	assert.Equal(t, 2, e.Len())
}

func TestNewEntry_Repeaters(t *testing.T) {
	tests := []struct {
		written   string
		effective string
	}{
		{"人々", "人人"},
		{"部分々々", "部分部分"},
		{"時々刻々", "時時刻刻"},
		{"いすゞ自動車", "いすず自動車"},
		{"こゝろ見", "こころ見"},
	}
	for _, tt := range tests {
		e, err := NewEntry(tt.written, "ひと", Vocab)
		require.NoError(t, err, tt.written)
		assert.Equal(t, tt.written, string(e.Raw))
		assert.Equal(t, tt.effective, string(e.Effective), tt.written)
		assert.Len(t, e.Effective, len(e.Raw))
	}
}

func TestNewEntry_ComposesDakuten(t *testing.T) {
	e, err := NewEntry("手紙", "て\u304b\u3099み", Vocab)
	require.NoError(t, err)
	assert.Equal(t, "てがみ", e.NormalizedReading)
}

func TestNewEntry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		written string
		reading string
		want    error
	}{
		{"empty written", "", "よみ", ErrEmpty},
		{"empty reading", "読み", "  ", ErrEmpty},
		{"all hiragana", "はなす", "はなす", ErrNoKanji},
		{"all katakana", "テレビ", "てれび", ErrNoKanji},
		{"latin reading", "話", "hana", ErrUnsupportedReading},
		{"kanji in reading", "話", "話", ErrUnsupportedReading},
		{"astral plane", "話", "は𠀋", ErrUnsupportedReading},
		{"iteration mark", "話", "はゝ", ErrUnsupportedReading},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntry(tt.written, tt.reading, Vocab)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "vocab", Vocab.String())
	assert.Equal(t, "name", Name.String())
	k, err := ParseKind("name")
	require.NoError(t, err)
	assert.Equal(t, Name, k)
	_, err = ParseKind("place")
	assert.Error(t, err)
}
