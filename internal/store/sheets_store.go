package store

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"fraternos-backend/internal/model"
)

const (
	sheetRange    = "attendance!A:F"
	sheetAttempts = 3
)

type sheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsStore opens the remote-spreadsheet backend: one sheet named
// "attendance", one row per event, columns identifier/name/committee/date/
// time/kind. The sheet row index doubles as the insertion sequence.
func NewSheetsStore(ctx context.Context, spreadsheetID, credentialsFile string) (EventStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &sheetsStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// withRetry runs fn up to sheetAttempts times with a short linear backoff,
// then wraps the last error as ErrStoreUnavailable.
func (s *sheetsStore) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= sheetAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func (s *sheetsStore) Append(ctx context.Context, ev *model.AttendanceEvent) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{
			ev.MemberID, ev.Name, ev.Committee, ev.Date, ev.Time, string(ev.Kind),
		}},
	}
	return s.withRetry(ctx, func() error {
		_, err := s.svc.Spreadsheets.Values.
			Append(s.spreadsheetID, sheetRange, vr).
			ValueInputOption("RAW").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).
			Do()
		return err
	})
}

func (s *sheetsStore) All(ctx context.Context) ([]model.AttendanceEvent, error) {
	var resp *sheets.ValueRange
	err := s.withRetry(ctx, func() error {
		var innerErr error
		resp, innerErr = s.svc.Spreadsheets.Values.
			Get(s.spreadsheetID, sheetRange).
			Context(ctx).
			Do()
		return innerErr
	})
	if err != nil {
		return nil, err
	}

	var events []model.AttendanceEvent
	for i, row := range resp.Values {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		ev := rowToEvent(row)
		ev.Seq = uint(i + 1) // 1-based sheet row
		events = append(events, ev)
	}
	return events, nil
}

func (s *sheetsStore) ByMemberAndDate(ctx context.Context, memberID, date string) ([]model.AttendanceEvent, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.AttendanceEvent
	for _, ev := range all {
		if ev.MemberID == memberID && ev.Date == date {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *sheetsStore) ByMember(ctx context.Context, memberID string) ([]model.AttendanceEvent, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.AttendanceEvent
	for _, ev := range all {
		if ev.MemberID == memberID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *sheetsStore) ByDate(ctx context.Context, date string) ([]model.AttendanceEvent, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.AttendanceEvent
	for _, ev := range all {
		if ev.Date == date {
			out = append(out, ev)
		}
	}
	return out, nil
}

func isHeaderRow(row []interface{}) bool {
	return len(row) > 0 && fmt.Sprint(row[0]) == "identifier"
}

func rowToEvent(row []interface{}) model.AttendanceEvent {
	get := func(i int) string {
		if i < len(row) {
			return fmt.Sprint(row[i])
		}
		return ""
	}
	return model.AttendanceEvent{
		MemberID:  get(0),
		Name:      get(1),
		Committee: get(2),
		Date:      get(3),
		Time:      get(4),
		Kind:      model.EventKind(get(5)),
	}
}
