package handler

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"fraternos-backend/internal/reconcile"
	"fraternos-backend/internal/report"
	"fraternos-backend/internal/roster"
	"fraternos-backend/internal/store"
)

type ReportHandler struct {
	events       store.EventStore
	dir          *roster.Directory
	policy       reconcile.NegativePolicy
	sessionsPath string
}

func NewReportHandler(events store.EventStore, dir *roster.Directory, policy reconcile.NegativePolicy, sessionsPath string) *ReportHandler {
	return &ReportHandler{events: events, dir: dir, policy: policy, sessionsPath: sessionsPath}
}

// MemberSummary reconciles one member's full history into per-day and total
// hours.
func (h *ReportHandler) MemberSummary(c *fiber.Ctx) error {
	memberID := c.Params("id")
	member, ok := h.dir.Lookup(memberID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "identifier not on the roster"})
	}

	events, err := h.events.ByMember(c.UserContext(), member.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load events"})
	}

	summary := report.Summarize(member.ID, events, h.policy)

	// Stable day ordering for the response; the map alone has none.
	days := make([]string, 0, len(summary.PerDay))
	for date := range summary.PerDay {
		days = append(days, date)
	}
	sort.Strings(days)

	perDay := make([]fiber.Map, 0, len(days))
	for _, date := range days {
		perDay = append(perDay, fiber.Map{"date": date, "hours": summary.PerDay[date]})
	}

	return c.JSON(fiber.Map{
		"message": "summary ready",
		"data": fiber.Map{
			"member_id":           summary.MemberID,
			"name":                member.Name,
			"committee":           member.Committee,
			"total_hours":         summary.TotalHours,
			"per_day":             perDay,
			"unmatched_events":    summary.UnmatchedEvents,
			"malformed_intervals": summary.MalformedIntervals,
		},
	})
}

// CommitteeTotals sums reconciled hours per committee and date over the full
// history.
func (h *ReportHandler) CommitteeTotals(c *fiber.Ctx) error {
	events, err := h.events.All(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load events"})
	}

	totals := report.CommitteeHours(events, h.dir, h.policy)

	rows := make([]fiber.Map, 0, len(totals))
	for key, hours := range totals {
		rows = append(rows, fiber.Map{"committee": key.Committee, "date": key.Date, "hours": hours})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i]["committee"].(string) != rows[j]["committee"].(string) {
			return rows[i]["committee"].(string) < rows[j]["committee"].(string)
		}
		return rows[i]["date"].(string) < rows[j]["date"].(string)
	})

	return c.JSON(fiber.Map{
		"message": "committee totals ready",
		"data":    rows,
	})
}

// Compliance evaluates every row of the session sheet against the semester
// threshold.
func (h *ReportHandler) Compliance(c *fiber.Ctx) error {
	rows, err := report.LoadSessions(h.sessionsPath)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "session attendance sheet unavailable"})
	}

	data := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		comp := report.Compute(row)
		data = append(data, fiber.Map{
			"member_id":          comp.MemberID,
			"name":               comp.Name,
			"semester":           comp.Semester,
			"current_pct":        comp.CurrentPct,
			"total_pct":          comp.TotalPct,
			"justifications_pct": comp.JustificationsPct,
			"required_pct":       report.RequiredThreshold(comp.Semester),
			"meets_requirement":  comp.MeetsRequirement(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "compliance report ready",
		"data":    data,
	})
}
