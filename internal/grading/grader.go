package grading

import (
	"sort"
	"strings"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"golang.org/x/text/cases"
)

// folder performs full Unicode case folding, matching how submitted
// fill-in answers are compared against accepted option texts.
var folder = cases.Fold()

// Normalize prepares a fill-in answer for comparison: whitespace trimmed,
// then case-folded.
func Normalize(s string) string {
	return folder.String(strings.TrimSpace(s))
}

// Result is the outcome of grading one submission against a test snapshot.
// Answers holds exactly one entry per question of the snapshot, in the
// snapshot's question order, whether or not the learner answered it.
type Result struct {
	Score          int
	TotalQuestions int
	Answers        []model.Answer
}

// BuildLookup maps question id → submitted payload. If the client submits
// duplicates for the same question, the last one in input order wins.
func BuildLookup(inputs []model.AnswerInput) map[int64]model.AnswerInput {
	lookup := make(map[int64]model.AnswerInput, len(inputs))
	for _, in := range inputs {
		lookup[in.Question] = in
	}
	return lookup
}

// Grade scores every question of the snapshot against the submitted
// answers. Grading anomalies are never errors: an unanswered question, an
// option id that does not resolve to an option of the question, or a fill
// question with no correct options all grade as incorrect.
func Grade(snapshot *model.TestSnapshot, inputs []model.AnswerInput) Result {
	lookup := BuildLookup(inputs)

	res := Result{
		TotalQuestions: len(snapshot.Questions),
		Answers:        make([]model.Answer, 0, len(snapshot.Questions)),
	}

	for _, question := range snapshot.Questions {
		payload, answered := lookup[question.ID]

		var selectedOption *int64
		var textResponse string
		isCorrect := false

		if answered && payload.TextResponse != nil {
			textResponse = *payload.TextResponse
		}

		switch question.QuestionType {
		case model.QuestionTypeSingle:
			if answered && payload.SelectedOption != nil {
				if opt := resolveOption(question, *payload.SelectedOption); opt != nil {
					selectedOption = &opt.ID
					isCorrect = opt.IsCorrect
				}
			}
		case model.QuestionTypeFill:
			correct := correctTextSet(question)
			if len(correct) > 0 {
				_, isCorrect = correct[Normalize(textResponse)]
			}
		}

		if isCorrect {
			res.Score++
		}

		res.Answers = append(res.Answers, model.Answer{
			QuestionID:       question.ID,
			SelectedOptionID: selectedOption,
			TextResponse:     textResponse,
			IsCorrect:        isCorrect,
		})
	}

	return res
}

// BuildReview assembles the learner-facing review for persisted answers,
// resolving each question's correct-answer texts and the displayed
// response. Entries are sorted by question order ascending regardless of
// answer creation order.
func BuildReview(snapshot *model.TestSnapshot, answers []model.Answer) []model.ReviewEntry {
	byQuestion := make(map[int64]model.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	review := make([]model.ReviewEntry, 0, len(snapshot.Questions))
	for _, question := range snapshot.Questions {
		answer := byQuestion[question.ID]

		selectedText := answer.TextResponse
		if answer.SelectedOptionID != nil {
			if opt := resolveOption(question, *answer.SelectedOptionID); opt != nil {
				selectedText = opt.Text
			}
		}

		review = append(review, model.ReviewEntry{
			Question:       question.ID,
			OrderNum:       question.OrderNum,
			Text:           question.Text,
			QuestionType:   question.QuestionType,
			SelectedText:   selectedText,
			IsCorrect:      answer.IsCorrect,
			CorrectAnswers: CorrectTexts(question),
			Explanation:    question.Explanation,
		})
	}

	sort.SliceStable(review, func(i, j int) bool {
		return review[i].OrderNum < review[j].OrderNum
	})
	return review
}

// CorrectTexts returns the raw texts of all options flagged correct, in
// option order.
func CorrectTexts(question model.QuestionWithOptions) []string {
	texts := make([]string, 0, 1)
	for _, opt := range question.Options {
		if opt.IsCorrect {
			texts = append(texts, opt.Text)
		}
	}
	return texts
}

// resolveOption finds the option with the given id among the question's own
// options. Ids belonging to other questions do not resolve.
func resolveOption(question model.QuestionWithOptions, id int64) *model.Option {
	for i := range question.Options {
		if question.Options[i].ID == id {
			return &question.Options[i]
		}
	}
	return nil
}

// correctTextSet returns the normalized accepted answers for a fill question.
func correctTextSet(question model.QuestionWithOptions) map[string]struct{} {
	set := make(map[string]struct{})
	for _, opt := range question.Options {
		if opt.IsCorrect {
			set[Normalize(opt.Text)] = struct{}{}
		}
	}
	return set
}
