package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMissingSource means the session-attendance file is absent or its fixed
// leading columns are not there. Fatal to report generation.
var ErrMissingSource = errors.New("session attendance source missing or incomplete")

// SessionRow is one member's line in the session-attendance sheet: three
// fixed leading columns (name, identifier, semester), then one cell per
// tracked session holding a status label or blank for sessions still ahead.
type SessionRow struct {
	Name     string
	MemberID string
	Semester int
	Statuses []string
}

// LoadSessions reads the session-attendance CSV at path.
func LoadSessions(path string) ([]SessionRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
	}
	defer f.Close()
	return ParseSessions(f)
}

// ParseSessions parses session-attendance CSV content.
func ParseSessions(r io.Reader) ([]SessionRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingSource, err)
	}
	if len(rows) == 0 || len(rows[0]) < 4 {
		return nil, fmt.Errorf("%w: expected name, identifier, semester and at least one session column", ErrMissingSource)
	}

	var out []SessionRow
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		semester, _ := strconv.Atoi(strings.TrimSpace(row[2]))
		sr := SessionRow{
			Name:     strings.TrimSpace(row[0]),
			MemberID: strings.TrimSpace(row[1]),
			Semester: semester,
		}
		if sr.MemberID == "" {
			continue
		}
		for _, cell := range row[3:] {
			sr.Statuses = append(sr.Statuses, strings.TrimSpace(cell))
		}
		out = append(out, sr)
	}
	return out, nil
}
