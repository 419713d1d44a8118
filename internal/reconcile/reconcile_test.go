package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraternos-backend/internal/model"
)

func event(seq uint, date, clock string, kind model.EventKind) model.AttendanceEvent {
	return model.AttendanceEvent{Seq: seq, MemberID: "645123", Date: date, Time: clock, Kind: kind}
}

func TestDecideNextKind(t *testing.T) {
	day := "2025-03-01"
	tests := []struct {
		name   string
		events []model.AttendanceEvent
		want   model.EventKind
	}{
		{"empty history", nil, model.CheckIn},
		{"after check-in", []model.AttendanceEvent{
			event(1, day, "08:00:00", model.CheckIn),
		}, model.CheckOut},
		{"after check-out", []model.AttendanceEvent{
			event(1, day, "08:00:00", model.CheckIn),
			event(2, day, "10:00:00", model.CheckOut),
		}, model.CheckIn},
		{"unsorted input", []model.AttendanceEvent{
			event(2, day, "10:00:00", model.CheckOut),
			event(1, day, "08:00:00", model.CheckIn),
		}, model.CheckIn},
		{"same time breaks tie by sequence", []model.AttendanceEvent{
			event(2, day, "08:00:00", model.CheckOut),
			event(1, day, "08:00:00", model.CheckIn),
		}, model.CheckIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideNextKind(tt.events))
		})
	}
}

func TestIntervals_BalancedDay(t *testing.T) {
	day := "2025-03-01"
	res := Intervals([]model.AttendanceEvent{
		event(1, day, "08:00:00", model.CheckIn),
		event(2, day, "10:00:00", model.CheckOut),
		event(3, day, "14:00:00", model.CheckIn),
		event(4, day, "17:30:00", model.CheckOut),
	}, IncludeNegative)

	require.Len(t, res.Intervals, 2)
	assert.InDelta(t, 2.0, res.Intervals[0].Hours, 1e-9)
	assert.InDelta(t, 3.5, res.Intervals[1].Hours, 1e-9)
	assert.Equal(t, 0, res.UnmatchedCount)
	assert.Equal(t, 0, res.MalformedCount)
}

func TestIntervals_TrailingCheckInDropped(t *testing.T) {
	day := "2025-03-01"
	res := Intervals([]model.AttendanceEvent{
		event(1, day, "08:00:00", model.CheckIn),
		event(2, day, "10:00:00", model.CheckOut),
		event(3, day, "14:00:00", model.CheckIn),
	}, IncludeNegative)

	require.Len(t, res.Intervals, 1)
	assert.InDelta(t, 2.0, res.Intervals[0].Hours, 1e-9)
	assert.Equal(t, 1, res.UnmatchedCount, "trailing check-in pairs with nothing")
}

func TestIntervals_LeadingCheckOutDropped(t *testing.T) {
	day := "2025-03-01"
	res := Intervals([]model.AttendanceEvent{
		event(1, day, "09:00:00", model.CheckOut),
		event(2, day, "11:00:00", model.CheckIn),
		event(3, day, "13:00:00", model.CheckOut),
	}, IncludeNegative)

	require.Len(t, res.Intervals, 1)
	assert.Equal(t, "11:00:00", res.Intervals[0].Start)
	assert.Equal(t, "13:00:00", res.Intervals[0].End)
	assert.InDelta(t, 2.0, res.Intervals[0].Hours, 1e-9)
	assert.Equal(t, 1, res.UnmatchedCount)
}

func TestIntervals_CrossedPairSurfacesNegative(t *testing.T) {
	day := "2025-03-01"
	events := []model.AttendanceEvent{
		event(1, day, "08:00:00", model.CheckIn),
		event(2, day, "08:30:00", model.CheckOut),
		event(3, day, "09:00:00", model.CheckIn),
		event(4, day, "08:45:00", model.CheckOut),
	}

	res := Intervals(events, IncludeNegative)
	require.Len(t, res.Intervals, 2)
	assert.InDelta(t, 0.5, res.Intervals[0].Hours, 1e-9)
	assert.InDelta(t, -0.25, res.Intervals[1].Hours, 1e-9)
	assert.Equal(t, 1, res.MalformedCount)

	dropped := Intervals(events, DropNegative)
	require.Len(t, dropped.Intervals, 1)
	assert.Equal(t, 1, dropped.MalformedCount)

	clamped := Intervals(events, ClampNegative)
	require.Len(t, clamped.Intervals, 2)
	assert.Zero(t, clamped.Intervals[1].Hours)
	assert.Equal(t, 1, clamped.MalformedCount)
}

func TestIntervals_MultipleDatesIndependent(t *testing.T) {
	res := Intervals([]model.AttendanceEvent{
		event(1, "2025-03-01", "08:00:00", model.CheckIn),
		event(2, "2025-03-01", "12:00:00", model.CheckOut),
		event(3, "2025-03-02", "09:00:00", model.CheckIn),
		event(4, "2025-03-02", "10:30:00", model.CheckOut),
		event(5, "2025-03-03", "09:00:00", model.CheckIn),
	}, IncludeNegative)

	require.Len(t, res.Intervals, 2)
	assert.Equal(t, "2025-03-01", res.Intervals[0].Date)
	assert.Equal(t, "2025-03-02", res.Intervals[1].Date)
	assert.Equal(t, 1, res.UnmatchedCount)
}

func TestIntervals_Idempotent(t *testing.T) {
	events := []model.AttendanceEvent{
		event(1, "2025-03-01", "08:00:00", model.CheckIn),
		event(2, "2025-03-01", "10:00:00", model.CheckOut),
		event(3, "2025-03-01", "14:00:00", model.CheckIn),
	}
	first := Intervals(events, IncludeNegative)
	second := Intervals(events, IncludeNegative)
	assert.Equal(t, first, second)
}

func TestIntervals_EmptyInput(t *testing.T) {
	res := Intervals(nil, IncludeNegative)
	assert.Empty(t, res.Intervals)
	assert.Zero(t, res.UnmatchedCount)
	assert.Zero(t, res.MalformedCount)
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, DropNegative, ParsePolicy("drop"))
	assert.Equal(t, ClampNegative, ParsePolicy("clamp"))
	assert.Equal(t, IncludeNegative, ParsePolicy("include"))
	assert.Equal(t, IncludeNegative, ParsePolicy(""))
}
