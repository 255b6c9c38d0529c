package domain

import "time"

type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
)

func (t QuestionType) Valid() bool {
	return t == QuestionSingle || t == QuestionMultiple
}

type Poll struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreatedBy    *string    `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	IsRestricted bool       `json:"is_restricted"`
	Questions    []Question `json:"questions"`
}

type Question struct {
	ID       string       `json:"id"`
	PollID   string       `json:"poll_id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Position int          `json:"position"`
	Options  []Option     `json:"options"`
}

type Option struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Position   int    `json:"position"`
}

// PollSummary is a poll without its questions, as returned by listings.
type PollSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedBy    *string   `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	IsRestricted bool      `json:"is_restricted"`
}

func (p *Poll) Summary() PollSummary {
	return PollSummary{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		IsRestricted: p.IsRestricted,
	}
}

// Question returns the question with the given id, if it belongs to p.
func (p *Poll) Question(id string) (*Question, bool) {
	for i := range p.Questions {
		if p.Questions[i].ID == id {
			return &p.Questions[i], true
		}
	}
	return nil, false
}

func (q *Question) HasOption(id string) bool {
	for _, opt := range q.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}
