// Package furigana aligns a word's written form with its reading.
//
// A Solver searches every way of splitting the written form into kana that
// read as themselves and spans annotated with a candidate reading, such that
// the readings in order spell the whole pronunciation. Every complete split
// is rebuilt, re-validated and de-duplicated; the word is annotated only when
// exactly one distinct split survives. Ambiguous and unreadable words come
// back without an annotation.
package furigana
