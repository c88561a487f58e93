package repository

import (
	"context"
	"database/sql"
	"time"
)

//go:generate mockgen -source=notice_repository.go -destination=mock/notice_repository.go -package=mock
//go:generate mockgen -source=status_check_repository.go -destination=mock/status_check_repository.go -package=mock

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// timeLayout is fixed width so stored timestamps sort lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
