package grading

import (
	"reflect"
	"testing"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

func opt(id int64, text string, correct bool) model.Option {
	return model.Option{ID: id, Text: text, IsCorrect: correct}
}

func singleQuestion(id int64, order int, options ...model.Option) model.QuestionWithOptions {
	return model.QuestionWithOptions{
		Question: model.Question{ID: id, QuestionType: model.QuestionTypeSingle, OrderNum: order},
		Options:  options,
	}
}

func fillQuestion(id int64, order int, options ...model.Option) model.QuestionWithOptions {
	return model.QuestionWithOptions{
		Question: model.Question{ID: id, QuestionType: model.QuestionTypeFill, OrderNum: order},
		Options:  options,
	}
}

func snapshot(questions ...model.QuestionWithOptions) *model.TestSnapshot {
	return &model.TestSnapshot{
		Test:      model.Test{ID: 1, Slug: "demo"},
		Questions: questions,
	}
}

func selected(question, option int64) model.AnswerInput {
	return model.AnswerInput{Question: question, SelectedOption: &option}
}

func typed(question int64, text string) model.AnswerInput {
	return model.AnswerInput{Question: question, TextResponse: &text}
}

func TestGradeAllCorrect(t *testing.T) {
	snap := snapshot(
		singleQuestion(1, 1, opt(10, "drikker", true), opt(11, "drikke", false)),
		fillQuestion(2, 2, opt(20, "takk", true)),
	)

	res := Grade(snap, []model.AnswerInput{
		selected(1, 10),
		typed(2, "takk"),
	})

	if res.Score != 2 || res.TotalQuestions != 2 {
		t.Fatalf("score = %d/%d, want 2/2", res.Score, res.TotalQuestions)
	}
	for i, a := range res.Answers {
		if !a.IsCorrect {
			t.Errorf("answer %d graded incorrect", i)
		}
	}
}

func TestGradeEmptyAnswers(t *testing.T) {
	snap := snapshot(
		singleQuestion(1, 1, opt(10, "a", true)),
		fillQuestion(2, 2, opt(20, "b", true)),
	)

	res := Grade(snap, nil)

	if res.Score != 0 {
		t.Fatalf("score = %d, want 0", res.Score)
	}
	if len(res.Answers) != 2 {
		t.Fatalf("answers = %d, want one per question", len(res.Answers))
	}
	for _, a := range res.Answers {
		if a.IsCorrect || a.SelectedOptionID != nil || a.TextResponse != "" {
			t.Errorf("unanswered question produced non-empty answer %+v", a)
		}
	}
}

func TestGradeFillNormalization(t *testing.T) {
	snap := snapshot(fillQuestion(1, 1, opt(10, "Riktig", true)))

	for _, response := range []string{"riktig", "RIKTIG", "  Riktig  ", "rIkTiG"} {
		res := Grade(snap, []model.AnswerInput{typed(1, response)})
		if res.Score != 1 {
			t.Errorf("response %q not accepted", response)
		}
	}

	res := Grade(snap, []model.AnswerInput{typed(1, "feil")})
	if res.Score != 0 {
		t.Errorf("wrong response accepted")
	}
}

func TestGradeForeignOptionDoesNotResolve(t *testing.T) {
	snap := snapshot(
		singleQuestion(1, 1, opt(10, "a", true)),
		singleQuestion(2, 2, opt(20, "b", true)),
	)

	// Option 20 belongs to question 2, not question 1.
	res := Grade(snap, []model.AnswerInput{selected(1, 20)})

	if res.Score != 0 {
		t.Fatalf("score = %d, want 0", res.Score)
	}
	if res.Answers[0].SelectedOptionID != nil {
		t.Errorf("foreign option id was stored")
	}
}

func TestGradeDuplicateAnswersLastWins(t *testing.T) {
	snap := snapshot(singleQuestion(1, 1, opt(10, "a", true), opt(11, "b", false)))

	res := Grade(snap, []model.AnswerInput{
		selected(1, 10),
		selected(1, 11),
	})

	if res.Score != 0 {
		t.Fatalf("score = %d, want 0 (last answer wins)", res.Score)
	}
	if res.Answers[0].SelectedOptionID == nil || *res.Answers[0].SelectedOptionID != 11 {
		t.Errorf("stored option = %v, want 11", res.Answers[0].SelectedOptionID)
	}
}

func TestGradeFillWithNoCorrectOptions(t *testing.T) {
	snap := snapshot(fillQuestion(1, 1, opt(10, "anything", false)))

	res := Grade(snap, []model.AnswerInput{typed(1, "anything")})

	if res.Score != 0 {
		t.Fatalf("fill question with no accepted answers graded correct")
	}
}

func TestGradeSingleWithMultipleCorrectOptions(t *testing.T) {
	snap := snapshot(singleQuestion(1, 1, opt(10, "a", true), opt(11, "b", true)))

	for _, id := range []int64{10, 11} {
		res := Grade(snap, []model.AnswerInput{selected(1, id)})
		if res.Score != 1 {
			t.Errorf("option %d not accepted", id)
		}
	}
}

func TestGradeDeterministic(t *testing.T) {
	snap := snapshot(
		singleQuestion(1, 1, opt(10, "a", true), opt(11, "b", false)),
		fillQuestion(2, 2, opt(20, "takk", true), opt(21, "tusen takk", true)),
		singleQuestion(3, 3, opt(30, "c", false), opt(31, "d", true)),
	)
	inputs := []model.AnswerInput{
		selected(1, 10),
		typed(2, " TUSEN TAKK "),
		selected(3, 30),
	}

	first := Grade(snap, inputs)
	for i := 0; i < 10; i++ {
		if got := Grade(snap, inputs); !reflect.DeepEqual(got, first) {
			t.Fatalf("grading run %d differs: %+v vs %+v", i, got, first)
		}
	}
	if first.Score != 2 {
		t.Fatalf("score = %d, want 2", first.Score)
	}
}

func TestBuildReviewOrdering(t *testing.T) {
	// Questions deliberately given out of order.
	snap := snapshot(
		singleQuestion(3, 3, opt(30, "c", true)),
		singleQuestion(1, 1, opt(10, "a", true)),
		fillQuestion(2, 2, opt(20, "b", true)),
	)

	res := Grade(snap, []model.AnswerInput{
		selected(1, 10),
		typed(2, "b"),
		selected(3, 30),
	})

	review := BuildReview(snap, res.Answers)
	if len(review) != 3 {
		t.Fatalf("review entries = %d, want 3", len(review))
	}
	for i, entry := range review {
		if entry.OrderNum != i+1 {
			t.Errorf("review[%d].OrderNum = %d, want %d", i, entry.OrderNum, i+1)
		}
	}
}

func TestBuildReviewSelectedText(t *testing.T) {
	snap := snapshot(
		singleQuestion(1, 1, opt(10, "drikker", true), opt(11, "drikke", false)),
		fillQuestion(2, 2, opt(20, "takk", true)),
	)

	res := Grade(snap, []model.AnswerInput{
		selected(1, 11),
		typed(2, "tusen takk"),
	})

	review := BuildReview(snap, res.Answers)
	if review[0].SelectedText != "drikke" {
		t.Errorf("single selected text = %q, want option text", review[0].SelectedText)
	}
	if review[1].SelectedText != "tusen takk" {
		t.Errorf("fill selected text = %q, want raw response", review[1].SelectedText)
	}
	if !reflect.DeepEqual(review[0].CorrectAnswers, []string{"drikker"}) {
		t.Errorf("correct answers = %v", review[0].CorrectAnswers)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Takk  ", "takk"},
		{"RIKTIG", "riktig"},
		{"Straße", "strasse"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildLookupLastWins(t *testing.T) {
	a, b := int64(10), int64(11)
	lookup := BuildLookup([]model.AnswerInput{
		{Question: 1, SelectedOption: &a},
		{Question: 1, SelectedOption: &b},
	})
	if len(lookup) != 1 {
		t.Fatalf("lookup size = %d, want 1", len(lookup))
	}
	if *lookup[1].SelectedOption != b {
		t.Errorf("lookup kept first duplicate, want last")
	}
}
