package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// ErrNotFound is returned when a result ID does not exist in the store.
var ErrNotFound = errors.New("result not found")

// Summary is the listing view of a stored result, without the embedded
// questions and answers.
type Summary struct {
	ID               string
	CreatedAt        time.Time
	Score            int
	TotalQuestions   int
	Accuracy         int
	TimeTakenSeconds int
	TimeLimitSeconds int
}

// Save persists a result and prunes the store down to MaxEntries.
func (s *Store) Save(ctx context.Context, r *quiz.Result) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO results (id, created_at, score, total_questions, accuracy, time_taken, time_limit, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UnixMilli(), r.Score, r.TotalQuestions, r.Accuracy,
		r.TimeTakenSeconds, r.TimeLimitSeconds, string(raw))
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}

	// Keep only the most recent MaxEntries results.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM results WHERE id NOT IN (
			SELECT id FROM results ORDER BY created_at DESC, id DESC LIMIT ?
		)`, MaxEntries)
	if err != nil {
		return fmt.Errorf("prune results: %w", err)
	}

	return tx.Commit()
}

// List returns summaries of stored results, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, score, total_questions, accuracy, time_taken, time_limit
		FROM results ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var createdAt int64
		if err := rows.Scan(&sum.ID, &createdAt, &sum.Score, &sum.TotalQuestions,
			&sum.Accuracy, &sum.TimeTakenSeconds, &sum.TimeLimitSeconds); err != nil {
			return nil, err
		}
		sum.CreatedAt = time.UnixMilli(createdAt)
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Get loads the full result with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*quiz.Result, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT result_json FROM results WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	var r quiz.Result
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, fmt.Errorf("unmarshal result %s: %w", id, err)
	}
	return &r, nil
}

// Delete removes one result from the store.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Clear removes every stored result.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM results`)
	return err
}

// Count returns the number of stored results.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results`).Scan(&n)
	return n, err
}
