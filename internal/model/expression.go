package model

import "time"

// Expression is an idiom or set phrase with per-language meanings.
type Expression struct {
	ID        int64     `json:"id"`
	Phrase    string    `json:"phrase"`
	MeaningEN string    `json:"meaning_en"`
	MeaningNB string    `json:"meaning_nb"`
	MeaningNN string    `json:"meaning_nn"`
	MeaningRU string    `json:"meaning_ru"`
	Example   string    `json:"example"`
	Stream    Stream    `json:"stream"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
