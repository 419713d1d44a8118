// Package report derives member, committee and compliance summaries. All
// totals are recomputed from the full event history on demand; nothing here
// caches or persists aggregate state.
package report

import (
	"fraternos-backend/internal/model"
	"fraternos-backend/internal/reconcile"
	"fraternos-backend/internal/roster"
)

// MemberSummary is one member's worked-hours rollup.
type MemberSummary struct {
	MemberID   string             `json:"member_id"`
	TotalHours float64            `json:"total_hours"`
	PerDay     map[string]float64 `json:"per_day"`
	// UnmatchedEvents and MalformedIntervals surface what the pairing
	// silently excluded or flagged, so lossy days are at least visible.
	UnmatchedEvents    int `json:"unmatched_events"`
	MalformedIntervals int `json:"malformed_intervals"`
}

// Summarize reconciles one member's events and sums durations per date and
// overall. Days whose reconciled total is not positive are left out of both
// the per-day map and the grand total; the counters are their only trace.
func Summarize(memberID string, events []model.AttendanceEvent, policy reconcile.NegativePolicy) MemberSummary {
	res := reconcile.Intervals(events, policy)

	perDay := map[string]float64{}
	for _, iv := range res.Intervals {
		perDay[iv.Date] += iv.Hours
	}

	summary := MemberSummary{
		MemberID:           memberID,
		PerDay:             map[string]float64{},
		UnmatchedEvents:    res.UnmatchedCount,
		MalformedIntervals: res.MalformedCount,
	}
	for date, hours := range perDay {
		if hours > 0 {
			summary.PerDay[date] = hours
			summary.TotalHours += hours
		}
	}
	return summary
}

// CommitteeDay keys the per-committee totals.
type CommitteeDay struct {
	Committee string `json:"committee"`
	Date      string `json:"date"`
}

// CommitteeHours sums reconciled interval durations per committee and date.
// It is a projection of the same canonical pairing Summarize uses — there is
// deliberately no second aggregation algorithm. Members no longer on the
// roster keep the committee recorded on their events.
func CommitteeHours(events []model.AttendanceEvent, dir *roster.Directory, policy reconcile.NegativePolicy) map[CommitteeDay]float64 {
	byMember := map[string][]model.AttendanceEvent{}
	for _, ev := range events {
		byMember[ev.MemberID] = append(byMember[ev.MemberID], ev)
	}

	totals := map[CommitteeDay]float64{}
	for memberID, memberEvents := range byMember {
		committee := memberEvents[0].Committee
		if m, ok := dir.Lookup(memberID); ok {
			committee = m.Committee
		}
		res := reconcile.Intervals(memberEvents, policy)
		for _, iv := range res.Intervals {
			totals[CommitteeDay{Committee: committee, Date: iv.Date}] += iv.Hours
		}
	}
	return totals
}
