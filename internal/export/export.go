package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"

	"fraternos-backend/internal/model"
)

// Header of the event export, one column per stored field.
var Header = []string{"identifier", "name", "committee", "date", "time", "kind"}

// Write streams events as CSV in insertion order.
func Write(w io.Writer, events []model.AttendanceEvent) error {
	sorted := make([]model.AttendanceEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Seq < sorted[j].Seq })

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, ev := range sorted {
		record := []string{ev.MemberID, ev.Name, ev.Committee, ev.Date, ev.Time, string(ev.Kind)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the export to path, creating parent directories.
func WriteFile(path string, events []model.AttendanceEvent) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, events)
}
