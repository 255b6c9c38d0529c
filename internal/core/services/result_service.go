package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type resultService struct {
	pollRepo   ports.PollRepository
	resultRepo ports.PollResultRepository
}

func NewResultService(pollRepo ports.PollRepository, resultRepo ports.PollResultRepository) ports.ResultService {
	return &resultService{
		pollRepo:   pollRepo,
		resultRepo: resultRepo,
	}
}

func (s *resultService) GetResults(ctx context.Context, pollID string) (*domain.PollResults, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	counts, err := s.resultRepo.CountSelections(ctx, poll.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count selections: %w", err)
	}

	submissions, err := s.resultRepo.CountSubmissions(ctx, poll.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	results := &domain.PollResults{
		PollID:      poll.ID,
		Submissions: submissions,
		Questions:   make([]domain.QuestionResult, 0, len(poll.Questions)),
	}

	for _, q := range poll.Questions {
		qr := domain.QuestionResult{
			QuestionID: q.ID,
			Text:       q.Text,
			Type:       q.Type,
			Options:    make([]domain.OptionResult, 0, len(q.Options)),
		}
		for _, opt := range q.Options {
			qr.Total += counts[opt.ID]
		}
		for _, opt := range q.Options {
			count := counts[opt.ID]
			percentage := 0.0
			if qr.Total > 0 {
				percentage = (float64(count) / float64(qr.Total)) * 100
			}
			qr.Options = append(qr.Options, domain.OptionResult{
				OptionID:   opt.ID,
				Text:       opt.Text,
				Count:      count,
				Percentage: percentage,
			})
		}
		results.Questions = append(results.Questions, qr)
	}

	return results, nil
}
