package ports

import (
	"context"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
)

type SubmissionRepository interface {
	// Save writes the submission, its answer rows and, when mark is not nil,
	// the completion mark in one transaction. A second mark for the same
	// user and poll fails with domain.ErrDuplicateKey.
	Save(ctx context.Context, submission *domain.Submission, mark *domain.CompletedMark) error
	HasCompleted(ctx context.Context, userID, pollID string) (bool, error)
}

type SubmitInput struct {
	PollID  string
	Answers []domain.Answer
	UserID  *string
}

type SubmissionService interface {
	Submit(ctx context.Context, input SubmitInput) (*domain.Submission, error)
	HasCompleted(ctx context.Context, pollID string, userID *string) (bool, error)
}
