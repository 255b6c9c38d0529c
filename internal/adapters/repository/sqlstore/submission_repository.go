package sqlstore

import (
	"context"
	"database/sql"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type submissionRepository struct {
	db  *sql.DB
	ids ports.IDGenerator
}

// NewSubmissionRepository returns a repository that stores one answer row per
// selected option. ids supplies the answer row identifiers.
func NewSubmissionRepository(db *sql.DB, ids ports.IDGenerator) ports.SubmissionRepository {
	return &submissionRepository{
		db:  db,
		ids: ids,
	}
}

func (r *submissionRepository) Save(ctx context.Context, submission *domain.Submission, mark *domain.CompletedMark) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	querySubmission := `
		INSERT INTO submissions (id, poll_id, user_id, submitted_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.ExecContext(ctx, querySubmission,
		submission.ID, submission.PollID, submission.UserID, submission.SubmittedAt.UTC(),
	)
	if err != nil {
		return storageError("failed to insert submission", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO answers (id, submission_id, question_id, option_id)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return storageError("failed to prepare answer statement", err)
	}
	defer stmt.Close()

	for _, a := range submission.Answers {
		for _, optionID := range a.SelectedOptions {
			if _, err := stmt.ExecContext(ctx, r.ids.NewID(), submission.ID, a.QuestionID, optionID); err != nil {
				return storageError("failed to insert answer", err)
			}
		}
	}

	if mark != nil {
		queryMark := `
			INSERT INTO completed_polls (user_id, poll_id, completed_at)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.ExecContext(ctx, queryMark, mark.UserID, mark.PollID, mark.CompletedAt.UTC()); err != nil {
			return storageError("failed to insert completion mark", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError("failed to commit transaction", err)
	}

	return nil
}

func (r *submissionRepository) HasCompleted(ctx context.Context, userID, pollID string) (bool, error) {
	query := `SELECT COUNT(*) FROM completed_polls WHERE user_id = $1 AND poll_id = $2`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, userID, pollID).Scan(&count); err != nil {
		return false, storageError("failed to check completion", err)
	}
	return count > 0, nil
}
