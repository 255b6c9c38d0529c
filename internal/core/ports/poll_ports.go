package ports

import (
	"context"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
)

type PollRepository interface {
	// Save writes the poll with all of its questions and options atomically.
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id string) (*domain.Poll, error)
	List(ctx context.Context) ([]domain.PollSummary, error)
}

type QuestionInput struct {
	Text    string
	Type    domain.QuestionType
	Options []string
}

type CreatePollInput struct {
	Title        string
	Description  string
	CreatedBy    *string
	IsRestricted bool
	Questions    []QuestionInput
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	GetPoll(ctx context.Context, id string) (*domain.Poll, error)
	ListPolls(ctx context.Context) ([]domain.PollSummary, error)
}
