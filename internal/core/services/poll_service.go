package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type pollService struct {
	repo ports.PollRepository
	ids  ports.IDGenerator
}

func NewPollService(repo ports.PollRepository, ids ports.IDGenerator) ports.PollService {
	return &pollService{
		repo: repo,
		ids:  ids,
	}
}

// Create assigns fresh ids to the poll and everything nested in it and keeps
// the given order as positions. Authoring rules are the caller's concern.
func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	pollID := s.ids.NewID()

	poll := &domain.Poll{
		ID:           pollID,
		Title:        input.Title,
		Description:  input.Description,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    time.Now().UTC(),
		IsRestricted: input.IsRestricted,
		Questions:    make([]domain.Question, 0, len(input.Questions)),
	}

	for qPos, q := range input.Questions {
		question := domain.Question{
			ID:       s.ids.NewID(),
			PollID:   pollID,
			Text:     q.Text,
			Type:     q.Type,
			Position: qPos,
			Options:  make([]domain.Option, 0, len(q.Options)),
		}
		for oPos, text := range q.Options {
			question.Options = append(question.Options, domain.Option{
				ID:         s.ids.NewID(),
				QuestionID: question.ID,
				Text:       text,
				Position:   oPos,
			})
		}
		poll.Questions = append(poll.Questions, question)
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, fmt.Errorf("failed to save poll: %w", err)
	}

	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *pollService) ListPolls(ctx context.Context) ([]domain.PollSummary, error) {
	polls, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	return polls, nil
}
