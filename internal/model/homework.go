package model

import (
	"encoding/json"
	"time"
)

// HomeworkStatus enumerates homework lifecycle states.
type HomeworkStatus string

const (
	HomeworkStatusDraft     HomeworkStatus = "draft"
	HomeworkStatusPublished HomeworkStatus = "published"
	HomeworkStatusClosed    HomeworkStatus = "closed"
)

// Homework is a teacher-issued task with optional per-student assignment.
type Homework struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Stream            Stream          `json:"stream"`
	Level             Level           `json:"level"`
	DueDate           *time.Time      `json:"due_date"`
	Instructions      string          `json:"instructions"`
	Attachments       json.RawMessage `json:"attachments"`
	Status            HomeworkStatus  `json:"status"`
	AssignedToEmail   *string         `json:"assigned_to_email"`
	StudentSubmission string          `json:"student_submission"`
	Feedback          string          `json:"feedback"`
	TeacherID         *int64          `json:"teacher,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"-"`
}
