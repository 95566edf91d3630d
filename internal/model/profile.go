package model

import "time"

// StudentProfile tracks a learner's chosen stream and level, keyed by email.
type StudentProfile struct {
	ID                int64     `json:"-"`
	Email             string    `json:"email"`
	Stream            Stream    `json:"stream"`
	Level             Level     `json:"level"`
	AllowStreamChange bool      `json:"allow_stream_change"`
	TeacherID         *int64    `json:"teacher,omitempty"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// ProfileResponse is the /profile/me payload.
type ProfileResponse struct {
	IsTeacher         bool   `json:"is_teacher"`
	IsAuthenticated   bool   `json:"is_authenticated"`
	Username          string `json:"username"`
	DisplayName       string `json:"display_name"`
	Stream            Stream `json:"stream"`
	Level             Level  `json:"level"`
	AllowStreamChange bool   `json:"allow_stream_change"`
}

// ChangeStreamRequest is the payload for switching a learner's stream/level.
type ChangeStreamRequest struct {
	Email string `json:"email" binding:"omitempty,max=254"`
	// StudentEmail is accepted as an alias for Email.
	StudentEmail string `json:"student_email" binding:"omitempty,max=254"`
	Stream       Stream `json:"stream" binding:"omitempty,oneof=bokmaal nynorsk english"`
	Level        Level  `json:"level" binding:"omitempty,oneof=A1 A2 B1 B2"`
}
