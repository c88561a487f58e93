package repository

import (
	"context"
	"fmt"

	"cgtsc/website/internal/model"
)

type StatusCheckRepository interface {
	Create(ctx context.Context, check model.StatusCheck) error
	List(ctx context.Context, limit int) ([]model.StatusCheck, error)
}

type statusCheckRepository struct {
	db dbtx
}

func NewStatusCheckRepository(db dbtx) StatusCheckRepository {
	return &statusCheckRepository{db: db}
}

func (r *statusCheckRepository) Create(ctx context.Context, check model.StatusCheck) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO status_checks (id, client_name, timestamp) VALUES (?, ?, ?)`,
		check.ID, check.ClientName, formatTime(check.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("create status check: %w", err)
	}
	return nil
}

func (r *statusCheckRepository) List(ctx context.Context, limit int) ([]model.StatusCheck, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp ASC, id ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	checks := make([]model.StatusCheck, 0)
	for rows.Next() {
		var check model.StatusCheck
		var ts string
		if err := rows.Scan(&check.ID, &check.ClientName, &ts); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		check.Timestamp, err = parseTime(ts)
		if err != nil {
			return nil, fmt.Errorf("parse status check timestamp: %w", err)
		}
		checks = append(checks, check)
	}
	return checks, rows.Err()
}
