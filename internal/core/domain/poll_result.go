package domain

type PollResults struct {
	PollID      string           `json:"poll_id"`
	Submissions int64            `json:"submissions"`
	Questions   []QuestionResult `json:"questions"`
}

type QuestionResult struct {
	QuestionID string         `json:"question_id"`
	Text       string         `json:"text"`
	Type       QuestionType   `json:"type"`
	Total      int64          `json:"total"`
	Options    []OptionResult `json:"options"`
}

type OptionResult struct {
	OptionID   string  `json:"option_id"`
	Text       string  `json:"text"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}
