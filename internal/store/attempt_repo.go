package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// attemptRepo implements AttemptRepo over the attempts table.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	profile, err := json.Marshal(a.Profile)
	if err != nil {
		return fmt.Errorf("marshal attempt profile: %w", err)
	}
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal attempt answers: %w", err)
	}
	results, err := json.Marshal(a.Results)
	if err != nil {
		return fmt.Errorf("marshal attempt results: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO attempts (id, profile, answers, results, taken_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.ID, string(profile), string(answers), string(results), a.TakenAt.UTC())
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Get(ctx context.Context, id string) (*Attempt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, profile, answers, results, taken_at FROM attempts WHERE id = ?`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *attemptRepo) Latest(ctx context.Context) (*Attempt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, profile, answers, results, taken_at FROM attempts
		 ORDER BY taken_at DESC LIMIT 1`)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *attemptRepo) List(ctx context.Context, limit int) ([]Attempt, error) {
	query := `SELECT id, profile, answers, results, taken_at FROM attempts ORDER BY taken_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return attempts, nil
}

func (r *attemptRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM attempts WHERE id NOT IN (
			SELECT id FROM attempts ORDER BY taken_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune attempts: %w", err)
	}
	return nil
}

func (r *attemptRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row scanner) (*Attempt, error) {
	var (
		a                         Attempt
		profile, answers, results string
	)
	if err := row.Scan(&a.ID, &profile, &answers, &results, &a.TakenAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan attempt: %w", err)
	}

	if err := json.Unmarshal([]byte(profile), &a.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal attempt profile: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &a.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal attempt answers: %w", err)
	}
	if err := json.Unmarshal([]byte(results), &a.Results); err != nil {
		return nil, fmt.Errorf("unmarshal attempt results: %w", err)
	}
	return &a, nil
}
