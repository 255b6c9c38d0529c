package testutil

import (
	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

// PollInput returns a three question poll: single, multiple, single.
func PollInput(restricted bool) ports.CreatePollInput {
	return ports.CreatePollInput{
		Title:        "Team Survey",
		Description:  "A short survey",
		IsRestricted: restricted,
		Questions: []ports.QuestionInput{
			{Text: "Favorite color?", Type: domain.QuestionSingle, Options: []string{"Red", "Green", "Blue"}},
			{Text: "Pets you own?", Type: domain.QuestionMultiple, Options: []string{"Cat", "Dog", "Fish", "None"}},
			{Text: "Coffee or tea?", Type: domain.QuestionSingle, Options: []string{"Coffee", "Tea", "Neither"}},
		},
	}
}

// CompleteAnswers picks the first option of every question and the first two
// of every multiple choice question.
func CompleteAnswers(poll *domain.Poll) []domain.Answer {
	answers := make([]domain.Answer, 0, len(poll.Questions))
	for _, q := range poll.Questions {
		selected := []string{q.Options[0].ID}
		if q.Type == domain.QuestionMultiple && len(q.Options) > 1 {
			selected = append(selected, q.Options[1].ID)
		}
		answers = append(answers, domain.Answer{QuestionID: q.ID, SelectedOptions: selected})
	}
	return answers
}
