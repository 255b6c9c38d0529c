package sqlstore

import (
	"context"
	"database/sql"

	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type pollResultRepository struct {
	db *sql.DB
}

func NewPollResultRepository(db *sql.DB) ports.PollResultRepository {
	return &pollResultRepository{
		db: db,
	}
}

func (r *pollResultRepository) CountSelections(ctx context.Context, pollID string) (map[string]int64, error) {
	query := `
		SELECT a.option_id, COUNT(*)
		FROM answers a
		JOIN submissions s ON s.id = a.submission_id
		WHERE s.poll_id = $1
		GROUP BY a.option_id
	`

	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, storageError("failed to count selections", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var optionID string
		var count int64
		if err := rows.Scan(&optionID, &count); err != nil {
			return nil, storageError("failed to scan selection count", err)
		}
		counts[optionID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating selection counts", err)
	}

	return counts, nil
}

func (r *pollResultRepository) CountSubmissions(ctx context.Context, pollID string) (int64, error) {
	query := `SELECT COUNT(*) FROM submissions WHERE poll_id = $1`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, pollID).Scan(&count); err != nil {
		return 0, storageError("failed to count submissions", err)
	}
	return count, nil
}
