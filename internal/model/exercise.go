package model

import (
	"encoding/json"
	"time"
)

// ExerciseKind enumerates interactive exercise formats.
type ExerciseKind string

const (
	ExerciseKindQuiz      ExerciseKind = "quiz"
	ExerciseKindDictation ExerciseKind = "dictation"
	ExerciseKindFlashcard ExerciseKind = "flashcard"
)

// Exercise is a self-contained practice activity; its payload shape is
// kind-specific and stored as raw JSON.
type Exercise struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	Stream           Stream          `json:"stream"`
	Level            Level           `json:"level"`
	Kind             ExerciseKind    `json:"kind"`
	Prompt           string          `json:"prompt"`
	Data             json.RawMessage `json:"data"`
	Tags             []string        `json:"tags"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	AssignedToEmail  *string         `json:"assigned_to_email"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"-"`
}
