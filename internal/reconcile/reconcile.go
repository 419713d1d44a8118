// Package reconcile turns the raw check-in/check-out event stream into the
// decisions and work intervals everything else is built on. All functions
// here are pure: same input, same output, no I/O.
package reconcile

import (
	"fmt"
	"sort"
	"time"

	"fraternos-backend/internal/model"
)

// NegativePolicy controls what Intervals does with a pair whose check-out
// precedes its check-in (clock skew, crossed scans). Whatever the policy,
// such pairs are counted in Result.MalformedCount.
type NegativePolicy int

const (
	// IncludeNegative sums negative durations as-is.
	IncludeNegative NegativePolicy = iota
	// DropNegative excludes the pair from the interval list.
	DropNegative
	// ClampNegative keeps the pair but counts it as zero hours.
	ClampNegative
)

// ParsePolicy maps the config value to a policy. Unknown values fall back to
// IncludeNegative.
func ParsePolicy(s string) NegativePolicy {
	switch s {
	case "drop":
		return DropNegative
	case "clamp":
		return ClampNegative
	default:
		return IncludeNegative
	}
}

// WorkInterval is one paired check-in/check-out on a single date. Derived,
// never stored.
type WorkInterval struct {
	MemberID string  `json:"member_id"`
	Date     string  `json:"date"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Hours    float64 `json:"hours"`
}

// Result of pairing one member's event history.
type Result struct {
	Intervals []WorkInterval
	// UnmatchedCount is the number of events that paired with nothing:
	// surplus check-ins or check-outs, and check-outs recorded before the
	// day's first check-in. They contribute zero hours, silently — the
	// counter is the only trace.
	UnmatchedCount int
	// MalformedCount is the number of pairs with negative duration,
	// regardless of what the policy did with them.
	MalformedCount int
}

// DecideNextKind returns the kind the next scan should record, given the
// member's events for the decision date: empty history or a trailing
// check-out means check-in, a trailing check-in means check-out.
func DecideNextKind(events []model.AttendanceEvent) model.EventKind {
	if len(events) == 0 {
		return model.CheckIn
	}
	sorted := sortEvents(events)
	if sorted[len(sorted)-1].Kind == model.CheckIn {
		return model.CheckOut
	}
	return model.CheckIn
}

// Intervals pairs the i-th check-in of each date with the i-th check-out,
// both lists sorted ascending by time. Check-outs recorded before the day's
// first check-in can close nothing and are treated as unmatched, as are
// surplus events when the counts differ.
func Intervals(events []model.AttendanceEvent, policy NegativePolicy) Result {
	byDate := map[string][]model.AttendanceEvent{}
	var dates []string
	for _, ev := range events {
		if _, seen := byDate[ev.Date]; !seen {
			dates = append(dates, ev.Date)
		}
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}
	sort.Strings(dates)

	var res Result
	for _, date := range dates {
		var ins, outs []model.AttendanceEvent
		for _, ev := range sortEvents(byDate[date]) {
			switch ev.Kind {
			case model.CheckIn:
				ins = append(ins, ev)
			case model.CheckOut:
				outs = append(outs, ev)
			}
		}

		// Leading orphan check-outs precede every check-in of the day.
		if len(ins) > 0 {
			for len(outs) > 0 && outs[0].Time < ins[0].Time {
				outs = outs[1:]
				res.UnmatchedCount++
			}
		}

		n := len(ins)
		if len(outs) < n {
			n = len(outs)
		}
		res.UnmatchedCount += (len(ins) - n) + (len(outs) - n)

		for i := 0; i < n; i++ {
			hours := hoursBetween(ins[i].Time, outs[i].Time)
			if hours < 0 {
				res.MalformedCount++
				switch policy {
				case DropNegative:
					continue
				case ClampNegative:
					hours = 0
				}
			}
			res.Intervals = append(res.Intervals, WorkInterval{
				MemberID: ins[i].MemberID,
				Date:     date,
				Start:    ins[i].Time,
				End:      outs[i].Time,
				Hours:    hours,
			})
		}
	}
	return res
}

// sortEvents orders by time-of-day, breaking ties by insertion sequence so
// simultaneous scans reconcile deterministically.
func sortEvents(events []model.AttendanceEvent) []model.AttendanceEvent {
	out := make([]model.AttendanceEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

func hoursBetween(start, end string) float64 {
	s, err1 := time.Parse("15:04:05", start)
	e, err2 := time.Parse("15:04:05", end)
	if err1 != nil || err2 != nil {
		return 0
	}
	return e.Sub(s).Hours()
}

func (p NegativePolicy) String() string {
	switch p {
	case DropNegative:
		return "drop"
	case ClampNegative:
		return "clamp"
	case IncludeNegative:
		return "include"
	}
	return fmt.Sprintf("NegativePolicy(%d)", int(p))
}
