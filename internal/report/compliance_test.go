package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredThreshold_BoundaryInclusive(t *testing.T) {
	assert.Equal(t, 80.0, RequiredThreshold(1))
	assert.Equal(t, 80.0, RequiredThreshold(5), "5th semester is still basic sciences")
	assert.Equal(t, 70.0, RequiredThreshold(6))
	assert.Equal(t, 70.0, RequiredThreshold(10))
}

func TestCompute_CurrentOverCompletedSessions(t *testing.T) {
	c := Compute(SessionRow{
		MemberID: "1",
		Semester: 4,
		Statuses: []string{StatusAttended, StatusLate, StatusAbsent},
	})
	assert.InDelta(t, 50.0, c.CurrentPct, 1e-9)
	assert.InDelta(t, 50.0, c.TotalPct, 1e-9)
}

func TestCompute_FutureSessionsLowerTheTotalOnly(t *testing.T) {
	c := Compute(SessionRow{
		MemberID: "1",
		Semester: 4,
		Statuses: []string{StatusAttended, StatusAttended, "", ""},
	})
	assert.InDelta(t, 100.0, c.CurrentPct, 1e-9)
	assert.InDelta(t, 50.0, c.TotalPct, 1e-9, "future sessions count as zero")
}

func TestCompute_JustificationsCountAsAttendance(t *testing.T) {
	c := Compute(SessionRow{
		MemberID: "1",
		Semester: 4,
		Statuses: []string{StatusJustified, StatusJustified, StatusAttended, StatusAbsent},
	})
	assert.InDelta(t, 75.0, c.CurrentPct, 1e-9)
	assert.InDelta(t, 50.0, c.JustificationsPct, 1e-9, "2 of 4 justifications used")
}

func TestCompute_JustificationsAboveAllowanceNotClamped(t *testing.T) {
	c := Compute(SessionRow{
		Statuses: []string{
			StatusJustified, StatusJustified, StatusJustified,
			StatusJustified, StatusJustified,
		},
	})
	assert.InDelta(t, 125.0, c.JustificationsPct, 1e-9)
}

func TestCompute_EmptyRow(t *testing.T) {
	c := Compute(SessionRow{MemberID: "1"})
	assert.Zero(t, c.CurrentPct)
	assert.Zero(t, c.TotalPct)
	assert.Zero(t, c.JustificationsPct)
}

func TestMeetsRequirement(t *testing.T) {
	assert.True(t, Compliance{Semester: 5, CurrentPct: 80}.MeetsRequirement())
	assert.False(t, Compliance{Semester: 5, CurrentPct: 79.9}.MeetsRequirement())
	assert.True(t, Compliance{Semester: 6, CurrentPct: 71}.MeetsRequirement())
}

func TestParseSessions(t *testing.T) {
	csvData := "Nombre completo,Matrícula,Semestre,Sesión 1,Sesión 2,Sesión 3\n" +
		"Ana Torres,645123,4,Sí asistió,Llegada tarde,\n" +
		"Bruno Díaz,645124,7,Justificación,No asistió,Aviso de falta\n"

	rows, err := ParseSessions(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "645123", rows[0].MemberID)
	assert.Equal(t, 4, rows[0].Semester)
	assert.Equal(t, []string{StatusAttended, StatusLate, ""}, rows[0].Statuses)

	c := Compute(rows[1])
	assert.Equal(t, 7, c.Semester)
	assert.InDelta(t, 100.0/3, c.CurrentPct, 1e-9)
	assert.InDelta(t, 25.0, c.JustificationsPct, 1e-9)
}

func TestParseSessions_MissingColumns(t *testing.T) {
	_, err := ParseSessions(strings.NewReader("Nombre completo,Matrícula\nAna,1\n"))
	assert.ErrorIs(t, err, ErrMissingSource)
}

func TestLoadSessions_MissingFile(t *testing.T) {
	_, err := LoadSessions("testdata/nope.csv")
	assert.ErrorIs(t, err, ErrMissingSource)
}
