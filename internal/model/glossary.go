package model

import "time"

// GlossaryTerm is a dictionary entry, unique per (term, stream, level).
type GlossaryTerm struct {
	ID            int64     `json:"id"`
	Term          string    `json:"term"`
	Translation   string    `json:"translation"`
	TranslationEN string    `json:"translation_en"`
	TranslationRU string    `json:"translation_ru"`
	TranslationNN string    `json:"translation_nn"`
	TranslationNB string    `json:"translation_nb"`
	Explanation   string    `json:"explanation"`
	Stream        Stream    `json:"stream"`
	Level         Level     `json:"level"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// GlossaryFilter narrows glossary listing; Query is a case-insensitive
// substring match over term, translation and explanation.
type GlossaryFilter struct {
	Stream string
	Query  string
}
