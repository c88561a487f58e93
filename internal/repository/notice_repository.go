package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cgtsc/website/internal/model"
	"cgtsc/website/internal/snowflake"
)

type NoticeRepository interface {
	// ReplaceSnapshot swaps the stored notice list for snap in one transaction.
	ReplaceSnapshot(ctx context.Context, snap model.NoticeSnapshot) error
	// LatestSnapshot returns nil when nothing has been stored yet.
	LatestSnapshot(ctx context.Context) (*model.NoticeSnapshot, error)
}

type noticeRepository struct {
	db *sql.DB
}

func NewNoticeRepository(db *sql.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) ReplaceSnapshot(ctx context.Context, snap model.NoticeSnapshot) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM notices`); err != nil {
		return fmt.Errorf("clear notices: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM notice_snapshots`); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}

	snapshotID := snowflake.NextID()
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO notice_snapshots (id, source, fetched_at) VALUES (?, ?, ?)`,
		snapshotID, snap.Source, formatTime(snap.FetchedAt),
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for i, n := range snap.Notices {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO notices (id, snapshot_id, position, title, description, date) VALUES (?, ?, ?, ?, ?, ?)`,
			snowflake.NextID(), snapshotID, i, n.Title, n.Description, n.Date.String(),
		); err != nil {
			return fmt.Errorf("insert notice %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (r *noticeRepository) LatestSnapshot(ctx context.Context) (*model.NoticeSnapshot, error) {
	var snapshotID int64
	var snap model.NoticeSnapshot
	var fetchedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source, fetched_at FROM notice_snapshots ORDER BY fetched_at DESC LIMIT 1`,
	).Scan(&snapshotID, &snap.Source, &fetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	snap.FetchedAt, err = parseTime(fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot fetched_at: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT title, description, date FROM notices WHERE snapshot_id = ? ORDER BY position ASC`,
		snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()

	snap.Notices = make([]model.Notice, 0)
	for rows.Next() {
		var n model.Notice
		var date string
		if err := rows.Scan(&n.Title, &n.Description, &date); err != nil {
			return nil, fmt.Errorf("scan notice: %w", err)
		}
		t, err := model.ParseISODate(date)
		if err != nil {
			return nil, fmt.Errorf("parse notice date: %w", err)
		}
		n.Date = model.DateOf(t)
		snap.Notices = append(snap.Notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notices: %w", err)
	}
	return &snap, nil
}
