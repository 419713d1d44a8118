package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fraternos-backend/internal/model"
	"fraternos-backend/internal/reconcile"
	"fraternos-backend/internal/roster"
	"fraternos-backend/internal/store"
)

// Recorder runs the read-decide-write sequence for a scan or manual entry.
// The sequence is serialized per member and date: without the lock, two
// near-simultaneous scans could both read the same history and record two
// check-ins in a row, silently breaking interval pairing for the rest of the
// day.
type Recorder struct {
	dir    *roster.Directory
	events store.EventStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRecorder(dir *roster.Directory, events store.EventStore) *Recorder {
	return &Recorder{dir: dir, events: events, locks: map[string]*sync.Mutex{}}
}

func (r *Recorder) lockFor(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

// Record decides check-in vs check-out for the member as of now, persists
// the event and returns it. Unknown members fail before anything is written.
func (r *Recorder) Record(ctx context.Context, memberID string, now time.Time) (*model.AttendanceEvent, error) {
	member, ok := r.dir.Lookup(memberID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", roster.ErrUnknownMember, memberID)
	}

	date := now.Format("2006-01-02")

	l := r.lockFor(member.ID + "|" + date)
	l.Lock()
	defer l.Unlock()

	history, err := r.events.ByMemberAndDate(ctx, member.ID, date)
	if err != nil {
		return nil, err
	}

	ev := &model.AttendanceEvent{
		MemberID:  member.ID,
		Name:      member.Name,
		Committee: member.Committee,
		Date:      date,
		Time:      now.Format("15:04:05"),
		Kind:      reconcile.DecideNextKind(history),
	}
	if err := r.events.Append(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}
