package store

import (
	"context"
	"errors"

	"fraternos-backend/internal/model"
)

// ErrStoreUnavailable means the backing store could not be reached, after
// retries where the backend retries at all.
var ErrStoreUnavailable = errors.New("event store unavailable")

// EventStore is the append/query contract shared by the relational and
// spreadsheet backends. Neither backend guarantees result ordering; callers
// must sort before reconciling. There is no dedup and no transactionality —
// the recorder serializes the read-decide-write sequence itself.
type EventStore interface {
	Append(ctx context.Context, ev *model.AttendanceEvent) error
	ByMemberAndDate(ctx context.Context, memberID, date string) ([]model.AttendanceEvent, error)
	ByMember(ctx context.Context, memberID string) ([]model.AttendanceEvent, error)
	ByDate(ctx context.Context, date string) ([]model.AttendanceEvent, error)
	All(ctx context.Context) ([]model.AttendanceEvent, error)
}
