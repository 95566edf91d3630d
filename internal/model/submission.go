package model

import (
	"math"
	"time"
)

// Submission is one attempt at one test. total_questions is a snapshot of
// the test's question count at submission time and never recomputed.
type Submission struct {
	ID             int64     `json:"id"`
	TestID         int64     `json:"test"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percent        float64   `json:"percent"`
	Locale         string    `json:"locale"`
	CreatedAt      time.Time `json:"created_at"`
}

// ComputePercent refreshes the derived percent field from score and
// total_questions.
func (s *Submission) ComputePercent() {
	s.Percent = Percent(s.Score, s.TotalQuestions)
}

// Percent returns score/total as a percentage rounded to two decimals.
// Zero total yields 0.0, never a division by zero.
func Percent(score, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(score)/float64(total)*100*100) / 100
}

// Answer records the graded response to one question of one submission.
// SelectedOptionID is a weak reference: deleting the option nulls it but
// keeps the answer. IsCorrect is frozen at grading time.
type Answer struct {
	ID               int64  `json:"id"`
	SubmissionID     int64  `json:"-"`
	QuestionID       int64  `json:"question"`
	SelectedOptionID *int64 `json:"selected_option"`
	TextResponse     string `json:"text_response"`
	IsCorrect        bool   `json:"is_correct"`
}

// AnswerInput is one element of the submitted answers array.
type AnswerInput struct {
	Question       int64   `json:"question" binding:"required"`
	SelectedOption *int64  `json:"selected_option" binding:"omitempty"`
	TextResponse   *string `json:"text_response" binding:"omitempty"`
}

// SubmitRequest is the payload for submitting a test attempt.
type SubmitRequest struct {
	Name    string        `json:"name" binding:"omitempty,max=120"`
	Email   string        `json:"email" binding:"omitempty,max=254"`
	Locale  string        `json:"locale" binding:"omitempty,max=5"`
	Answers []AnswerInput `json:"answers" binding:"omitempty,dive"`
}

// SubmitSummary aggregates the grading outcome.
type SubmitSummary struct {
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percent        float64 `json:"percent"`
	Correct        int     `json:"correct"`
	Incorrect      int     `json:"incorrect"`
}

// ReviewEntry reconciles one question against the learner's answer.
type ReviewEntry struct {
	Question       int64        `json:"question"`
	OrderNum       int          `json:"order"`
	Text           string       `json:"text"`
	QuestionType   QuestionType `json:"question_type"`
	SelectedText   string       `json:"selected_text"`
	IsCorrect      bool         `json:"is_correct"`
	CorrectAnswers []string     `json:"correct_answers"`
	Explanation    string       `json:"explanation"`
}

// SubmitResult is the full 201 response body for a submission.
type SubmitResult struct {
	Summary    SubmitSummary `json:"summary"`
	Submission Submission    `json:"submission"`
	Answers    []Answer      `json:"answers"`
	Review     []ReviewEntry `json:"review"`
}
