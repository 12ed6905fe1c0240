// Package table reads and writes the stage-1/stage-2 interchange table.
package table

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/model"
)

// Header is the interchange column order. The last three columns are empty on
// stage-1 output and populated by stage 2.
var Header = []string{
	"first_name", "last_name", "middle_name", "suffix",
	"organization", "linkedin_id", "other_matches", "database_id",
}

// ReadCSV loads an interchange table from path. The header row is matched by
// name so column order is not load-bearing; missing resolution columns are
// tolerated for stage-1 files. Empty cells map to absent optional fields.
func ReadCSV(path string) ([]model.Prospect, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "table: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "table: read header")
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}
	for _, required := range []string{"first_name", "last_name", "organization"} {
		if _, ok := idx[required]; !ok {
			return nil, eris.Errorf("table: missing required column %q", required)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	optional := func(row []string, col string) *string {
		if v := cell(row, col); v != "" {
			return model.StringPtr(v)
		}
		return nil
	}

	var rows []model.Prospect
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "table: read row")
		}

		rows = append(rows, model.Prospect{
			NameRecord: model.NameRecord{
				FirstName:  cell(record, "first_name"),
				LastName:   cell(record, "last_name"),
				MiddleName: optional(record, "middle_name"),
				Suffix:     optional(record, "suffix"),
			},
			Organization: cell(record, "organization"),
			LinkedInID:   optional(record, "linkedin_id"),
			OtherMatches: optional(record, "other_matches"),
			DatabaseID:   cell(record, "database_id"),
		})
	}

	return rows, nil
}

// WriteCSV writes the interchange table to path, header first. Absent
// optional fields become empty cells.
func WriteCSV(path string, rows []model.Prospect) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "table: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return eris.Wrap(err, "table: write header")
	}

	for _, p := range rows {
		if err := w.Write(rowCells(p)); err != nil {
			return eris.Wrap(err, "table: write row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "table: flush")
	}
	return nil
}

// rowCells serializes one row in Header order.
func rowCells(p model.Prospect) []string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return []string{
		p.FirstName,
		p.LastName,
		deref(p.MiddleName),
		deref(p.Suffix),
		p.Organization,
		deref(p.LinkedInID),
		deref(p.OtherMatches),
		p.DatabaseID,
	}
}
