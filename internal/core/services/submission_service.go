package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type submissionService struct {
	pollRepo       ports.PollRepository
	submissionRepo ports.SubmissionRepository
	ids            ports.IDGenerator
}

func NewSubmissionService(pollRepo ports.PollRepository, submissionRepo ports.SubmissionRepository, ids ports.IDGenerator) ports.SubmissionService {
	return &submissionService{
		pollRepo:       pollRepo,
		submissionRepo: submissionRepo,
		ids:            ids,
	}
}

// Submit validates the answers against the poll's current questions and
// options and records them. Each check short-circuits in this order: poll
// existence, restricted access, prior completion, completeness, then
// per-answer validity. Nothing is written unless every check passes.
func (s *submissionService) Submit(ctx context.Context, input ports.SubmitInput) (*domain.Submission, error) {
	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	if poll.IsRestricted && input.UserID == nil {
		return nil, domain.ErrAuthRequired
	}

	if input.UserID != nil {
		completed, err := s.submissionRepo.HasCompleted(ctx, *input.UserID, poll.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check completion: %w", err)
		}
		if completed {
			return nil, domain.ErrAlreadyCompleted
		}
	}

	if err := validateAnswers(poll, input.Answers); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	submission := &domain.Submission{
		ID:          s.ids.NewID(),
		PollID:      poll.ID,
		UserID:      input.UserID,
		SubmittedAt: now,
		Answers:     input.Answers,
	}

	var mark *domain.CompletedMark
	if input.UserID != nil {
		mark = &domain.CompletedMark{
			UserID:      *input.UserID,
			PollID:      poll.ID,
			CompletedAt: now,
		}
	}

	if err := s.submissionRepo.Save(ctx, submission, mark); err != nil {
		if mark != nil && errors.Is(err, domain.ErrDuplicateKey) {
			// The completion mark's primary key is the final word when two
			// submissions by one user race past the check above.
			completed, checkErr := s.submissionRepo.HasCompleted(ctx, mark.UserID, mark.PollID)
			if checkErr == nil && completed {
				return nil, domain.ErrAlreadyCompleted
			}
		}
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	return submission, nil
}

func (s *submissionService) HasCompleted(ctx context.Context, pollID string, userID *string) (bool, error) {
	if userID == nil {
		return false, nil
	}
	completed, err := s.submissionRepo.HasCompleted(ctx, *userID, pollID)
	if err != nil {
		return false, fmt.Errorf("failed to check completion: %w", err)
	}
	return completed, nil
}

func validateAnswers(poll *domain.Poll, answers []domain.Answer) error {
	answered := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = struct{}{}
	}

	var missing []string
	for _, q := range poll.Questions {
		if _, ok := answered[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return &domain.IncompleteSubmissionError{Missing: missing}
	}

	seen := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		question, ok := poll.Question(a.QuestionID)
		if !ok {
			return &domain.UnknownQuestionError{QuestionID: a.QuestionID}
		}

		if _, dup := seen[a.QuestionID]; dup {
			return &domain.DuplicateAnswerError{QuestionID: a.QuestionID}
		}
		seen[a.QuestionID] = struct{}{}

		switch question.Type {
		case domain.QuestionSingle:
			if len(a.SelectedOptions) != 1 {
				return &domain.InvalidSingleChoiceError{
					QuestionID: question.ID,
					Text:       question.Text,
					Selected:   len(a.SelectedOptions),
				}
			}
		case domain.QuestionMultiple:
			if len(a.SelectedOptions) == 0 {
				return &domain.IncompleteSubmissionError{Missing: []string{question.ID}}
			}
		}

		if invalid := invalidOptions(question, a.SelectedOptions); len(invalid) > 0 {
			return &domain.InvalidOptionError{
				QuestionID: question.ID,
				Text:       question.Text,
				OptionIDs:  invalid,
			}
		}
	}

	return nil
}

// invalidOptions returns the selected ids that do not belong to q or that
// repeat an earlier selection.
func invalidOptions(q *domain.Question, selected []string) []string {
	var invalid []string
	picked := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		if !q.HasOption(id) {
			invalid = append(invalid, id)
			continue
		}
		if _, dup := picked[id]; dup {
			invalid = append(invalid, id)
			continue
		}
		picked[id] = struct{}{}
	}
	return invalid
}
