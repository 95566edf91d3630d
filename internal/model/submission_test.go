package model

import "testing"

func TestPercent(t *testing.T) {
	cases := []struct {
		score, total int
		want         float64
	}{
		{0, 0, 0.0},
		{5, 0, 0.0},
		{0, 10, 0.0},
		{10, 10, 100.0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{7, 9, 77.78},
		{1, 8, 12.5},
	}
	for _, c := range cases {
		if got := Percent(c.score, c.total); got != c.want {
			t.Errorf("Percent(%d, %d) = %v, want %v", c.score, c.total, got, c.want)
		}
	}
}

func TestComputePercent(t *testing.T) {
	s := Submission{Score: 3, TotalQuestions: 4}
	s.ComputePercent()
	if s.Percent != 75.0 {
		t.Errorf("Percent = %v, want 75", s.Percent)
	}
}

func TestQuestionMode(t *testing.T) {
	mixed := &TestSnapshot{Questions: []QuestionWithOptions{
		{Question: Question{QuestionType: QuestionTypeSingle}},
		{Question: Question{QuestionType: QuestionTypeFill}},
	}}
	if got := mixed.QuestionMode(); got != "mixed" {
		t.Errorf("mixed snapshot mode = %q", got)
	}

	uniform := &TestSnapshot{Questions: []QuestionWithOptions{
		{Question: Question{QuestionType: QuestionTypeFill}},
		{Question: Question{QuestionType: QuestionTypeFill}},
	}}
	if got := uniform.QuestionMode(); got != "fill" {
		t.Errorf("uniform snapshot mode = %q", got)
	}

	empty := &TestSnapshot{}
	if got := empty.QuestionMode(); got != "single" {
		t.Errorf("empty snapshot mode = %q", got)
	}
}
