package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexedSolution_Equal(t *testing.T) {
	a := IndexedSolution{Spans: []Span{{"はな", 0, 1}, {"さお", 2, 3}}}
	b := IndexedSolution{Spans: []Span{{"さお", 2, 3}, {"はな", 0, 1}}}
	c := IndexedSolution{Spans: []Span{{"はな", 0, 1}, {"さお", 2, 4}}}
	d := IndexedSolution{Spans: []Span{{"はな", 0, 1}}}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, d.Equal(a))
	assert.True(t, IndexedSolution{}.Equal(IndexedSolution{}))
}

func TestIndexedSolution_StringRoundTrip(t *testing.T) {
	s := IndexedSolution{Spans: []Span{{"さお", 2, 3}, {"おとな", 4, 6}, {"ま", 0, 1}}}
	assert.Equal(t, "0:ま;2:さお;4-5:おとな", s.String())

	parsed, err := ParseIndexed(s.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(s))

	empty, err := ParseIndexed("")
	require.NoError(t, err)
	assert.Empty(t, empty.Spans)
}

func TestParseIndexed_Errors(t *testing.T) {
	for _, in := range []string{"0", "a:はな", "0-x:はな", "3-1:はな", "0:", "-1:は"} {
		_, err := ParseIndexed(in)
		assert.ErrorIs(t, err, ErrBadIndexed, in)
	}
}

func TestTextSolution(t *testing.T) {
	ts := TextSolution{Segments: []Segment{
		{Text: "話", Furigana: "はな"},
		{Text: "す"},
	}}
	assert.Equal(t, "話す", ts.Written())
	assert.Equal(t, "はなす", ts.Pronunciation())
	assert.Equal(t, "[話|はな]す", ts.Brackets())
	assert.Equal(t, "<ruby>話<rt>はな</rt></ruby>す", ts.Ruby())
}
