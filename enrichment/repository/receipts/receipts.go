// Package receipts persists the durable intake record kept for every webhook
// delivery. The receipt row is both the dedup key and the status journal for
// the background task processing that delivery.
package receipts

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=./receipts.go -destination=../../mocks/repository/receipt_repo/receipts.go -package=receipt_repo

type Querier interface {
	Exists(ctx context.Context, eventID string, versionTS time.Time) (bool, error)
	Insert(ctx context.Context, arg InsertParams) error
	Get(ctx context.Context, eventID string, versionTS time.Time) (Receipt, error)
	// MarkProcessing claims a receipt for processing. It returns the number
	// of rows moved; zero means another task already claimed it.
	MarkProcessing(ctx context.Context, eventID string, versionTS time.Time) (int64, error)
	MarkCompleted(ctx context.Context, eventID string, versionTS time.Time) (int64, error)
	MarkFailed(ctx context.Context, eventID string, versionTS time.Time, errorMessage string) (int64, error)
}

type Receipt struct {
	ID              int64
	EventID         string
	VersionTS       pgtype.Timestamptz
	HookAction      pgtype.Text
	Status          string
	ErrorMessage    pgtype.Text
	PayloadRaw      []byte
	RecordedAt      pgtype.Timestamptz
	StatusChangedAt pgtype.Timestamptz
}

type InsertParams struct {
	EventID    string
	VersionTS  pgtype.Timestamptz
	HookAction pgtype.Text
	PayloadRaw []byte
}

type Queries struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}

const existsQuery = `
SELECT EXISTS (
    SELECT 1 FROM intake_receipts
    WHERE event_id = $1 AND version_ts = $2
)`

func (q *Queries) Exists(ctx context.Context, eventID string, versionTS time.Time) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, existsQuery, eventID, versionTS).Scan(&exists)
	return exists, err
}

const insertQuery = `
INSERT INTO intake_receipts (event_id, version_ts, hook_action, status, payload_raw)
VALUES ($1, $2, $3, 'received', $4)`

func (q *Queries) Insert(ctx context.Context, arg InsertParams) error {
	_, err := q.db.Exec(ctx, insertQuery, arg.EventID, arg.VersionTS, arg.HookAction, arg.PayloadRaw)
	return err
}

const getQuery = `
SELECT id, event_id, version_ts, hook_action, status, error_message, payload_raw, recorded_at, status_changed_at
FROM intake_receipts
WHERE event_id = $1 AND version_ts = $2`

func (q *Queries) Get(ctx context.Context, eventID string, versionTS time.Time) (Receipt, error) {
	var r Receipt
	err := q.db.QueryRow(ctx, getQuery, eventID, versionTS).Scan(
		&r.ID,
		&r.EventID,
		&r.VersionTS,
		&r.HookAction,
		&r.Status,
		&r.ErrorMessage,
		&r.PayloadRaw,
		&r.RecordedAt,
		&r.StatusChangedAt,
	)
	return r, err
}

const markProcessingQuery = `
UPDATE intake_receipts
SET status = 'processing', status_changed_at = now()
WHERE event_id = $1 AND version_ts = $2 AND status = 'received'`

func (q *Queries) MarkProcessing(ctx context.Context, eventID string, versionTS time.Time) (int64, error) {
	tag, err := q.db.Exec(ctx, markProcessingQuery, eventID, versionTS)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markCompletedQuery = `
UPDATE intake_receipts
SET status = 'completed', status_changed_at = now()
WHERE event_id = $1 AND version_ts = $2 AND status = 'processing'`

func (q *Queries) MarkCompleted(ctx context.Context, eventID string, versionTS time.Time) (int64, error) {
	tag, err := q.db.Exec(ctx, markCompletedQuery, eventID, versionTS)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markFailedQuery = `
UPDATE intake_receipts
SET status = 'failed', error_message = $3, status_changed_at = now()
WHERE event_id = $1 AND version_ts = $2 AND status = 'processing'`

func (q *Queries) MarkFailed(ctx context.Context, eventID string, versionTS time.Time, errorMessage string) (int64, error) {
	tag, err := q.db.Exec(ctx, markFailedQuery, eventID, versionTS, errorMessage)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
