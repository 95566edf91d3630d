package model

import "time"

// MaterialType enumerates the kinds of learning material.
type MaterialType string

const (
	MaterialTypeText  MaterialType = "text"
	MaterialTypeVideo MaterialType = "video"
	MaterialTypeAudio MaterialType = "audio"
)

// Material is a stream/level-tagged learning resource.
type Material struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Stream          Stream       `json:"stream"`
	Level           Level        `json:"level"`
	MaterialType    MaterialType `json:"material_type"`
	Body            string       `json:"body"`
	URL             string       `json:"url"`
	Tags            []string     `json:"tags"`
	IsPublished     bool         `json:"is_published"`
	AssignedToEmail *string      `json:"assigned_to_email"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"-"`
}

// ContentFilter narrows stream/level-tagged listings. Email applies the
// assigned_to_email visibility rule: rows with no assignee are visible to
// everyone, assigned rows only to that email.
type ContentFilter struct {
	Stream       string
	Level        string
	StudentEmail string
}
