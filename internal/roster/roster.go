package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"fraternos-backend/internal/model"
)

// ErrMissingSource means the roster file is absent or lacks a required
// column. Fatal at startup.
var ErrMissingSource = errors.New("roster source missing or incomplete")

// ErrUnknownMember means an identifier is not present in the roster.
var ErrUnknownMember = errors.New("member not found in roster")

// Header aliases accepted after trimming and lowercasing. The roster sheets
// historically use the Spanish headers; English ones work too.
var headerAliases = map[string]string{
	"matricula":       "id",
	"matrícula":       "id",
	"id":              "id",
	"identifier":      "id",
	"nombre completo": "name",
	"nombre":          "name",
	"full name":       "name",
	"name":            "name",
	"comite":          "committee",
	"comité":          "committee",
	"committee":       "committee",
	"correo":          "email",
	"email":           "email",
}

// Directory is the read-only member lookup table built from the roster.
type Directory struct {
	byID  map[string]model.Member
	order []model.Member
}

// Load reads the roster CSV at path.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse builds a Directory from roster CSV content. The header row is
// normalized before matching; id, name and committee columns are required,
// email is optional. Rows with a blank identifier are skipped.
func Parse(r io.Reader) (*Directory, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingSource, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty roster", ErrMissingSource)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if field, ok := headerAliases[key]; ok {
			cols[field] = i
		}
	}
	for _, required := range []string{"id", "name", "committee"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: column %q not found", ErrMissingSource, required)
		}
	}

	dir := &Directory{byID: make(map[string]model.Member)}
	for _, row := range rows[1:] {
		m := model.Member{
			ID:        cell(row, cols["id"]),
			Name:      cell(row, cols["name"]),
			Committee: cell(row, cols["committee"]),
		}
		if idx, ok := cols["email"]; ok {
			m.Email = cell(row, idx)
		}
		if m.ID == "" {
			continue
		}
		if _, dup := dir.byID[m.ID]; dup {
			continue // first row wins
		}
		dir.byID[m.ID] = m
		dir.order = append(dir.order, m)
	}
	sort.Slice(dir.order, func(i, j int) bool {
		return dir.order[i].Name < dir.order[j].Name
	})
	return dir, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Lookup returns the member for an identifier.
func (d *Directory) Lookup(id string) (model.Member, bool) {
	m, ok := d.byID[strings.TrimSpace(id)]
	return m, ok
}

// Members returns all members sorted by name.
func (d *Directory) Members() []model.Member {
	out := make([]model.Member, len(d.order))
	copy(out, d.order)
	return out
}

// Committee returns the members of one committee, label matched
// case-insensitively.
func (d *Directory) Committee(label string) []model.Member {
	var out []model.Member
	for _, m := range d.order {
		if strings.EqualFold(m.Committee, label) {
			out = append(out, m)
		}
	}
	return out
}

func (d *Directory) Len() int {
	return len(d.order)
}
