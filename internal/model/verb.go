package model

import "time"

// VerbEntry is a conjugation-table row with example sentences per tense.
// Example fields hold newline-separated sentences.
type VerbEntry struct {
	ID                 int64     `json:"id"`
	Verb               string    `json:"verb"`
	Stream             Stream    `json:"stream"`
	Infinitive         string    `json:"infinitive"`
	Present            string    `json:"present"`
	Past               string    `json:"past"`
	Perfect            string    `json:"perfect"`
	ExamplesInfinitive string    `json:"examples_infinitive"`
	ExamplesPresent    string    `json:"examples_present"`
	ExamplesPast       string    `json:"examples_past"`
	ExamplesPerfect    string    `json:"examples_perfect"`
	TranslationEN      string    `json:"translation_en"`
	TranslationRU      string    `json:"translation_ru"`
	TranslationNB      string    `json:"translation_nb"`
	Tags               []string  `json:"tags"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}
