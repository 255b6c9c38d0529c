package ports

import (
	"context"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
)

type PollResultRepository interface {
	// CountSelections returns the number of answer rows per option id.
	CountSelections(ctx context.Context, pollID string) (map[string]int64, error)
	CountSubmissions(ctx context.Context, pollID string) (int64, error)
}

type ResultService interface {
	GetResults(ctx context.Context, pollID string) (*domain.PollResults, error)
}
