package handler

import (
	"encoding/json"
	"testing"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/response"
	"github.com/gin-gonic/gin"
)

// The list and detail endpoints wrap their payloads in a named object
// under data. These tests pin the wire shape so clients decoding
// data.tests / data.test / data.submissions keep working.

func TestListTestsEnvelopeShape(t *testing.T) {
	env := response.Response{
		Data: gin.H{"tests": []model.TestSummary{
			{ID: 1, Title: "Demo", Slug: "demo", Level: model.LevelA1, Stream: model.StreamBokmaal},
		}},
	}
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body struct {
		Data struct {
			Tests []struct {
				Slug string `json:"slug"`
			} `json:"tests"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Tests) != 1 || body.Data.Tests[0].Slug != "demo" {
		t.Errorf("tests not under data.tests: %s", raw)
	}
}

func TestGetTestEnvelopeShape(t *testing.T) {
	env := response.Response{
		Data: gin.H{"test": model.TestDetail{
			TestSummary: model.TestSummary{
				ID: 1, Title: "Demo", Slug: "demo", QuestionCount: 2, QuestionMode: "single",
			},
		}},
	}
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body struct {
		Data struct {
			Test struct {
				Slug          string `json:"slug"`
				QuestionCount int    `json:"question_count"`
			} `json:"test"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Test.Slug != "demo" || body.Data.Test.QuestionCount != 2 {
		t.Errorf("detail not under data.test: %s", raw)
	}
}

func TestListSubmissionsEnvelopeShape(t *testing.T) {
	env := response.Response{
		Data: gin.H{"submissions": []model.Submission{
			{ID: 7, TestID: 1, Email: "kari@example.com", Score: 3, TotalQuestions: 4},
		}},
		Pagination: &response.Pagination{Page: 1, PerPage: 20, TotalItems: 1, TotalPages: 1},
	}
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body struct {
		Data struct {
			Submissions []struct {
				Email string `json:"email"`
				Score int    `json:"score"`
			} `json:"submissions"`
		} `json:"data"`
		Pagination struct {
			Page    int `json:"page"`
			PerPage int `json:"per_page"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Submissions) != 1 || body.Data.Submissions[0].Email != "kari@example.com" {
		t.Errorf("submissions not under data.submissions: %s", raw)
	}
	if body.Pagination.Page != 1 || body.Pagination.PerPage != 20 {
		t.Errorf("pagination lost: %s", raw)
	}
}
