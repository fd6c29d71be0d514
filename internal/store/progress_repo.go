package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// progressRepo implements ProgressRepo over the single-row progress table.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Save(ctx context.Context, p Progress) error {
	profile, err := json.Marshal(p.Profile)
	if err != nil {
		return fmt.Errorf("marshal progress profile: %w", err)
	}
	answers, err := json.Marshal(p.Answers)
	if err != nil {
		return fmt.Errorf("marshal progress answers: %w", err)
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO progress (id, profile, answers, position, updated_at) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			profile = excluded.profile,
			answers = excluded.answers,
			position = excluded.position,
			updated_at = excluded.updated_at`,
		string(profile), string(answers), p.Position, updatedAt)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Load(ctx context.Context) (*Progress, error) {
	var (
		profile, answers string
		p                Progress
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT profile, answers, position, updated_at FROM progress WHERE id = 1`,
	).Scan(&profile, &answers, &p.Position, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	if err := json.Unmarshal([]byte(profile), &p.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal progress profile: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &p.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal progress answers: %w", err)
	}
	return &p, nil
}

func (r *progressRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress`); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
