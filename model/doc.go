// Package model holds the data shared across the aligner: the entry being
// solved, the intermediate and indexed solution forms, the renderable
// annotation and the tokens produced by the sentence pipeline.
package model
