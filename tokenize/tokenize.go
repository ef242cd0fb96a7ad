// Package tokenize splits running text into words with kagome so each word
// and its reading can be aligned on its own.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"furiganaalign/model"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// Tokenizer wraps a kagome tokenizer over one system dictionary.
type Tokenizer struct {
	kg *tokenizer.Tokenizer
}

// New builds a tokenizer over the "ipa" or "uni" system dictionary.
func New(dictName string) (*Tokenizer, error) {
	var d *dict.Dict
	switch dictName {
	case "ipa", "":
		d = ipa.Dict()
	case "uni":
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown tokenizer dictionary %q", dictName)
	}
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init kagome: %w", err)
	}
	return &Tokenizer{kg: kg}, nil
}

// Tokenize returns the tokens of text in normal mode.
func (t *Tokenizer) Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	return convertKagomeTokens(t.kg.Tokenize(text))
}

func convertKagomeTokens(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY || strings.TrimSpace(kt.Surface) == "" {
			continue
		}
		lemma, _ := kt.BaseForm()
		if lemma == "" || lemma == "*" {
			lemma = kt.Surface
		}
		reading, _ := kt.Reading()
		if reading == "*" {
			reading = ""
		}
		pron, _ := kt.Pronunciation()
		if pron == "*" {
			pron = ""
		}
		infType, _ := kt.InflectionalType()
		infForm, _ := kt.InflectionalForm()
		out = append(out, Token{
			Text:           kt.Surface,
			Lemma:          lemma,
			POS:            strings.Join(kt.POS(), ","),
			Start:          kt.Start,
			End:            kt.End,
			Reading:        reading,
			Pronunciation:  pron,
			InflectionType: infType,
			InflectionForm: infForm,
		})
	}
	return out
}

// MergeVerbAuxiliaries scans tokens and merges verb+auxiliary sequences into a single token.
func MergeVerbAuxiliaries(tokens []Token) []Token {
	var out []Token
	i := 0
	for i < len(tokens) {
		tk := tokens[i]
		if strings.HasPrefix(tk.POS, "動詞") {
			// collect auxiliaries following the verb
			var auxs []Token
			indices := []int{tk.Start}
			j := i + 1
			for j < len(tokens) && isAuxiliary(tokens[j].POS) {
				auxs = append(auxs, tokens[j])
				indices = append(indices, tokens[j].Start)
				j++
			}
			if len(auxs) > 0 {
				merged := tk
				conjugation := make([]string, 0, len(auxs))
				for _, aux := range auxs {
					merged.Text += aux.Text
					merged.Reading += aux.Reading
					merged.Pronunciation += aux.Pronunciation
					conjugation = append(conjugation, aux.Lemma)
				}
				merged.End = auxs[len(auxs)-1].End
				merged.Conjugation = conjugation
				merged.Auxiliaries = auxs
				merged.MergedIndices = indices
				merged.ConjugationLabel = getConjugationLabel(conjugation)
				out = append(out, merged)
				i = j
				continue
			}
		}
		out = append(out, tk)
		i++
	}
	return out
}

func isAuxiliary(pos string) bool {
	return strings.HasPrefix(pos, "助動詞") ||
		strings.HasPrefix(pos, "動詞,非自立") ||
		strings.HasPrefix(pos, "動詞,接尾")
}

// getConjugationLabel maps auxiliary lemma sequences to a human-readable conjugation label.
func getConjugationLabel(auxs []string) string {
	switch strings.Join(auxs, "+") {
	case "ます":
		return "polite"
	case "た":
		return "past"
	case "ます+た":
		return "polite past"
	case "ない":
		return "negative"
	case "ます+ん":
		return "polite negative"
	}
	return ""
}
