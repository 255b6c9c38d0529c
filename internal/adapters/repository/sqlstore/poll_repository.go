package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (id, title, description, created_by, created_at, is_restricted)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, queryPoll,
		poll.ID, poll.Title, poll.Description, poll.CreatedBy, poll.CreatedAt.UTC(), poll.IsRestricted,
	)
	if err != nil {
		return storageError("failed to insert poll", err)
	}

	questionStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions (id, poll_id, text, type, order_index)
		VALUES ($1, $2, $3, $4, $5)
	`)
	if err != nil {
		return storageError("failed to prepare question statement", err)
	}
	defer questionStmt.Close()

	optionStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO options (id, question_id, text, order_index)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return storageError("failed to prepare option statement", err)
	}
	defer optionStmt.Close()

	for _, q := range poll.Questions {
		if _, err := questionStmt.ExecContext(ctx, q.ID, poll.ID, q.Text, string(q.Type), q.Position); err != nil {
			return storageError("failed to insert question", err)
		}
		for _, opt := range q.Options {
			if _, err := optionStmt.ExecContext(ctx, opt.ID, q.ID, opt.Text, opt.Position); err != nil {
				return storageError("failed to insert option", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError("failed to commit transaction", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id string) (*domain.Poll, error) {
	queryPoll := `
		SELECT id, title, description, created_by, created_at, is_restricted
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	var createdBy sql.NullString
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Title, &poll.Description, &createdBy, &poll.CreatedAt, &poll.IsRestricted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, storageError("failed to get poll", err)
	}
	if createdBy.Valid {
		poll.CreatedBy = &createdBy.String
	}
	poll.CreatedAt = poll.CreatedAt.UTC()

	// Questions are read fully before options are queried: a SQLite pool
	// has a single connection and cannot hold two open result sets.
	questions, err := r.fetchQuestions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	if err := r.fetchOptions(ctx, poll.ID, questions); err != nil {
		return nil, err
	}
	poll.Questions = questions

	return &poll, nil
}

func (r *pollRepository) List(ctx context.Context) ([]domain.PollSummary, error) {
	query := `
		SELECT id, title, description, created_by, created_at, is_restricted
		FROM polls
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("failed to list polls", err)
	}
	defer rows.Close()

	polls := []domain.PollSummary{}
	for rows.Next() {
		var p domain.PollSummary
		var createdBy sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &createdBy, &p.CreatedAt, &p.IsRestricted); err != nil {
			return nil, storageError("failed to scan poll", err)
		}
		if createdBy.Valid {
			p.CreatedBy = &createdBy.String
		}
		p.CreatedAt = p.CreatedAt.UTC()
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating polls", err)
	}
	return polls, nil
}

func (r *pollRepository) fetchQuestions(ctx context.Context, pollID string) ([]domain.Question, error) {
	query := `
		SELECT id, poll_id, text, type, order_index
		FROM questions
		WHERE poll_id = $1
		ORDER BY order_index, id
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, storageError("failed to get questions", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		var qType string
		if err := rows.Scan(&q.ID, &q.PollID, &q.Text, &qType, &q.Position); err != nil {
			return nil, storageError("failed to scan question", err)
		}
		q.Type = domain.QuestionType(qType)
		q.Options = []domain.Option{}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating questions", err)
	}
	return questions, nil
}

func (r *pollRepository) fetchOptions(ctx context.Context, pollID string, questions []domain.Question) error {
	query := `
		SELECT o.id, o.question_id, o.text, o.order_index
		FROM options o
		JOIN questions q ON q.id = o.question_id
		WHERE q.poll_id = $1
		ORDER BY o.order_index, o.id
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return storageError("failed to get options", err)
	}
	defer rows.Close()

	index := make(map[string]int, len(questions))
	for i, q := range questions {
		index[q.ID] = i
	}

	for rows.Next() {
		var opt domain.Option
		if err := rows.Scan(&opt.ID, &opt.QuestionID, &opt.Text, &opt.Position); err != nil {
			return storageError("failed to scan option", err)
		}
		if i, ok := index[opt.QuestionID]; ok {
			questions[i].Options = append(questions[i].Options, opt)
		}
	}
	if err := rows.Err(); err != nil {
		return storageError("error iterating options", err)
	}
	return nil
}
