package store

import (
	"context"
	"sync"

	"fraternos-backend/internal/model"
)

type memoryStore struct {
	mu      sync.Mutex
	events  []model.AttendanceEvent
	nextSeq uint
}

// NewMemoryStore returns an in-memory EventStore. It backs the recorder and
// reconciliation tests so the core never needs a live database.
func NewMemoryStore() EventStore {
	return &memoryStore{nextSeq: 1}
}

func (s *memoryStore) Append(_ context.Context, ev *model.AttendanceEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev.Seq = s.nextSeq
	s.nextSeq++
	s.events = append(s.events, *ev)
	return nil
}

func (s *memoryStore) filter(keep func(model.AttendanceEvent) bool) []model.AttendanceEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.AttendanceEvent
	for _, ev := range s.events {
		if keep(ev) {
			out = append(out, ev)
		}
	}
	return out
}

func (s *memoryStore) ByMemberAndDate(_ context.Context, memberID, date string) ([]model.AttendanceEvent, error) {
	return s.filter(func(ev model.AttendanceEvent) bool {
		return ev.MemberID == memberID && ev.Date == date
	}), nil
}

func (s *memoryStore) ByMember(_ context.Context, memberID string) ([]model.AttendanceEvent, error) {
	return s.filter(func(ev model.AttendanceEvent) bool { return ev.MemberID == memberID }), nil
}

func (s *memoryStore) ByDate(_ context.Context, date string) ([]model.AttendanceEvent, error) {
	return s.filter(func(ev model.AttendanceEvent) bool { return ev.Date == date }), nil
}

func (s *memoryStore) All(_ context.Context) ([]model.AttendanceEvent, error) {
	return s.filter(func(model.AttendanceEvent) bool { return true }), nil
}
