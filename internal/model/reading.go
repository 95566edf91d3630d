package model

import "time"

// Reading is a graded text with per-language titles and translations.
type Reading struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	TitleEN       string    `json:"title_en"`
	TitleNB       string    `json:"title_nb"`
	TitleNN       string    `json:"title_nn"`
	TitleRU       string    `json:"title_ru"`
	Slug          string    `json:"slug"`
	Stream        Stream    `json:"stream"`
	Level         Level     `json:"level"`
	Body          string    `json:"body"`
	TranslationEN string    `json:"translation_en"`
	TranslationNB string    `json:"translation_nb"`
	TranslationNN string    `json:"translation_nn"`
	TranslationRU string    `json:"translation_ru"`
	Tags          []string  `json:"tags"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`
}
