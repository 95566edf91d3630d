package service

import (
	"testing"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Kari@Example.COM ", "kari@example.com"},
		{"ola@example.com", "ola@example.com"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeEmail(c.in); got != c.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "en"},
		{"  ", "en"},
		{"nb", "nb"},
		{"nb-NO", "nb-NO"},
		{"nb-NO-extended", "nb-NO"},
	}
	for _, c := range cases {
		if got := normalizeLocale(c.in); got != c.want {
			t.Errorf("normalizeLocale(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{1, 20, 1, 20},
		{0, 0, 1, 20},
		{-3, -1, 1, 20},
		{2, 50, 2, 50},
		{1, 500, 1, 100},
		{1, 100, 1, 100},
	}
	for _, c := range cases {
		page, perPage := ClampPage(c.page, c.perPage)
		if page != c.wantPage || perPage != c.wantPerPage {
			t.Errorf("ClampPage(%d, %d) = (%d, %d), want (%d, %d)",
				c.page, c.perPage, page, perPage, c.wantPage, c.wantPerPage)
		}
	}
}

func TestBuildTestDetailStripsCorrectness(t *testing.T) {
	snap := &model.TestSnapshot{
		Test: model.Test{ID: 1, Title: "Demo", Slug: "demo", Level: model.LevelA1, Stream: model.StreamBokmaal},
		Questions: []model.QuestionWithOptions{
			{
				Question: model.Question{ID: 1, Text: "q1", QuestionType: model.QuestionTypeSingle, OrderNum: 1},
				Options: []model.Option{
					{ID: 10, Text: "right", IsCorrect: true, OrderNum: 1},
					{ID: 11, Text: "wrong", OrderNum: 2},
				},
			},
		},
	}

	detail := BuildTestDetail(snap)

	if detail.QuestionCount != 1 {
		t.Fatalf("question count = %d", detail.QuestionCount)
	}
	if detail.QuestionMode != "single" {
		t.Errorf("question mode = %q", detail.QuestionMode)
	}
	if len(detail.Questions) != 1 || len(detail.Questions[0].Options) != 2 {
		t.Fatalf("unexpected payload shape: %+v", detail)
	}
	// PublicOption has no correctness field at all; verify option identity
	// and order survive the projection.
	opts := detail.Questions[0].Options
	if opts[0].ID != 10 || opts[1].ID != 11 {
		t.Errorf("option order changed: %+v", opts)
	}
}
