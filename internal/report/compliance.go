package report

// Attendance-status vocabulary used in the session sheet. The labels are the
// sheet's own; they map to the weights a session contributes.
const (
	StatusAttended      = "Sí asistió"
	StatusLate          = "Llegada tarde"
	StatusJustified     = "Justificación"
	StatusAbsent        = "No asistió"
	StatusNoticedAbsent = "Aviso de falta"
)

var statusWeights = map[string]float64{
	StatusAttended:      1.0,
	StatusLate:          0.5,
	StatusJustified:     1.0,
	StatusAbsent:        0.0,
	StatusNoticedAbsent: 0.0,
}

// MaxJustifications is the per-semester allowance of excused absences.
const MaxJustifications = 4

// Compliance is one member's attendance standing against the semester
// threshold. These are exactly the numbers the notification charts render.
type Compliance struct {
	MemberID string  `json:"member_id"`
	Name     string  `json:"name"`
	Semester int     `json:"semester"`
	// CurrentPct counts completed sessions only.
	CurrentPct float64 `json:"current_pct"`
	// TotalPct counts every session, future ones as zero — a lower bound
	// that can only improve as the semester runs.
	TotalPct          float64 `json:"total_pct"`
	JustificationsPct float64 `json:"justifications_pct"`
}

// RequiredThreshold is the minimum attendance percentage for a semester:
// basic-sciences semesters (1st through 5th) must hold 80%, clinical
// semesters 70%.
func RequiredThreshold(semester int) float64 {
	if semester <= 5 {
		return 80
	}
	return 70
}

func (c Compliance) MeetsRequirement() bool {
	return c.CurrentPct >= RequiredThreshold(c.Semester)
}

// Compute derives the three percentages from one member's session row. Blank
// cells are sessions that have not happened yet: skipped for the current
// percentage, counted as zero for the total. A justification count above the
// allowance yields more than 100% — surfaced as-is, not clamped.
func Compute(row SessionRow) Compliance {
	var currentSum, totalSum float64
	completed := 0
	justifications := 0

	for _, status := range row.Statuses {
		if status == "" {
			continue
		}
		weight := statusWeights[status] // unknown labels weigh zero
		currentSum += weight
		totalSum += weight
		completed++
		if status == StatusJustified {
			justifications++
		}
	}

	c := Compliance{
		MemberID:          row.MemberID,
		Name:              row.Name,
		Semester:          row.Semester,
		JustificationsPct: float64(justifications) / MaxJustifications * 100,
	}
	if completed > 0 {
		c.CurrentPct = currentSum / float64(completed) * 100
	}
	if len(row.Statuses) > 0 {
		c.TotalPct = totalSum / float64(len(row.Statuses)) * 100
	}
	return c
}
