package domain

import "time"

type Answer struct {
	QuestionID      string   `json:"question_id"`
	SelectedOptions []string `json:"selected_options"`
}

type Submission struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	UserID      *string   `json:"user_id,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	Answers     []Answer  `json:"answers"`
}

// CompletedMark records that a user answered a poll. At most one exists per
// (UserID, PollID).
type CompletedMark struct {
	UserID      string    `json:"user_id"`
	PollID      string    `json:"poll_id"`
	CompletedAt time.Time `json:"completed_at"`
}
