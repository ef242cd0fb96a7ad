// Package ingest accepts raw sentences for the sentence pipeline.
package ingest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptySentence is returned for blank input.
var ErrEmptySentence = errors.New("empty sentence")

// Sentence represents an ingested Japanese sentence and metadata.
type Sentence struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// IngestSentence trims and NFC-normalizes text and stamps it with an id.
func IngestSentence(text string) (Sentence, error) {
	trimmed := norm.NFC.String(strings.TrimSpace(text))
	if trimmed == "" {
		return Sentence{}, ErrEmptySentence
	}
	return Sentence{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}
