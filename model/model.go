package model

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Text             string    `json:"text"`
	Lemma            string    `json:"lemma,omitempty"`
	POS              string    `json:"pos,omitempty"`
	Start            int       `json:"start"`
	End              int       `json:"end"`
	Reading          string    `json:"reading,omitempty"`
	Pronunciation    string    `json:"pronunciation,omitempty"`
	Conjugation      []string  `json:"conjugation,omitempty"`
	Auxiliaries      []Token   `json:"auxiliaries,omitempty"`
	MergedIndices    []int     `json:"merged_indices,omitempty"`
	ConjugationLabel string    `json:"conjugation_label,omitempty"`
	InflectionType   string    `json:"inflection_type,omitempty"`
	InflectionForm   string    `json:"inflection_form,omitempty"`
	FuriganaText     string    `json:"furigana_text,omitempty"`
	FuriganaStatus   string    `json:"furigana_status,omitempty"`
	Segments         []Segment `json:"segments,omitempty"`
}
