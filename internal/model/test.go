package model

import (
	"time"
)

// Stream enumerates the content streams tests and materials are authored in.
type Stream string

const (
	StreamBokmaal Stream = "bokmaal"
	StreamNynorsk Stream = "nynorsk"
	StreamEnglish Stream = "english"
)

// Level enumerates CEFR proficiency levels.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
)

// Test represents a named quiz owned by a stream/level.
type Test struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	Level            Level     `json:"level"`
	Stream           Stream    `json:"stream"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	IsPublished      bool      `json:"is_published"`
	IsRestricted     bool      `json:"is_restricted"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// QuestionType distinguishes how a question is answered and graded.
type QuestionType string

const (
	// QuestionTypeSingle is graded by the selected option's is_correct flag.
	QuestionTypeSingle QuestionType = "single"
	// QuestionTypeFill is graded by free-text match against correct option texts.
	QuestionTypeFill QuestionType = "fill"
)

// Question belongs to exactly one test.
type Question struct {
	ID           int64        `json:"id"`
	TestID       int64        `json:"test_id"`
	Text         string       `json:"text"`
	QuestionType QuestionType `json:"question_type"`
	OrderNum     int          `json:"order"`
	Explanation  string       `json:"explanation"`
}

// Option belongs to exactly one question. For fill questions every option
// flagged correct is an accepted literal answer string.
type Option struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"-"`
	OrderNum   int    `json:"order"`
}

// QuestionWithOptions pairs a question with its ordered options.
type QuestionWithOptions struct {
	Question
	Options []Option `json:"options"`
}

// TestSnapshot is the eagerly-loaded view of a test used by the grader:
// the test plus all questions and options fetched once per submission,
// so grading runs over a fixed snapshot with no mid-request reads.
type TestSnapshot struct {
	Test      Test
	Questions []QuestionWithOptions
}

// QuestionMode derives the aggregate question type of the snapshot:
// "single", "fill" or "mixed". Empty tests report "single".
func (s *TestSnapshot) QuestionMode() string {
	if len(s.Questions) == 0 {
		return string(QuestionTypeSingle)
	}
	mode := s.Questions[0].QuestionType
	for _, q := range s.Questions[1:] {
		if q.QuestionType != mode {
			return "mixed"
		}
	}
	return string(mode)
}

// TestSummary is the list-endpoint payload with derived counts.
type TestSummary struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	Level            Level  `json:"level"`
	Stream           Stream `json:"stream"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	QuestionCount    int    `json:"question_count"`
	QuestionMode     string `json:"question_mode"`
	IsRestricted     bool   `json:"is_restricted"`
}

// PublicOption is an option as shown to learners, with correctness stripped.
type PublicOption struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	OrderNum int    `json:"order"`
}

// PublicQuestion is a question as shown to learners.
type PublicQuestion struct {
	ID           int64          `json:"id"`
	Text         string         `json:"text"`
	QuestionType QuestionType   `json:"question_type"`
	OrderNum     int            `json:"order"`
	Options      []PublicOption `json:"options"`
}

// TestDetail is the Redis-cached detail payload sent to learners.
type TestDetail struct {
	TestSummary
	Questions []PublicQuestion `json:"questions"`
}

// TestFilter narrows test listing. Email expands visibility to restricted
// tests the student is assigned to.
type TestFilter struct {
	Stream       string
	Level        string
	StudentEmail string
}
