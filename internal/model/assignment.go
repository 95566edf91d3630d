package model

import "time"

// Assignment grants one student email access to one restricted test.
// Unique per (test, student_email).
type Assignment struct {
	ID           int64      `json:"id"`
	TestID       int64      `json:"test"`
	StudentEmail string     `json:"student_email"`
	AssignedByID *int64     `json:"assigned_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// CreateAssignmentRequest is the payload for assigning a restricted test.
type CreateAssignmentRequest struct {
	TestID       int64      `json:"test" binding:"required"`
	StudentEmail string     `json:"student_email" binding:"required,email,max=254"`
	ExpiresAt    *time.Time `json:"expires_at" binding:"omitempty"`
}
