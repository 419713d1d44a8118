package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraternos-backend/internal/model"
)

func TestWrite_HeaderAndInsertionOrder(t *testing.T) {
	events := []model.AttendanceEvent{
		{Seq: 2, MemberID: "1", Name: "Ana Torres", Committee: "Registro", Date: "2025-03-01", Time: "10:00:00", Kind: model.CheckOut},
		{Seq: 1, MemberID: "1", Name: "Ana Torres", Committee: "Registro", Date: "2025-03-01", Time: "08:00:00", Kind: model.CheckIn},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, events))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"1", "Ana Torres", "Registro", "2025-03-01", "08:00:00", "Check-in"}, rows[1])
	assert.Equal(t, "Check-out", rows[2][5])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "events.csv")
	require.NoError(t, WriteFile(path, []model.AttendanceEvent{
		{Seq: 1, MemberID: "1", Name: "Ana", Committee: "Mesa", Date: "2025-03-01", Time: "08:00:00", Kind: model.CheckIn},
	}))
	assert.FileExists(t, path)
}
