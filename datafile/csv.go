package datafile

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jacentio/datadex/datamap"
)

// MergeNamesCSV merges a translation table into an existing DataMap.
//
// The CSV header row lists language codes and must include keyLang. Each data
// row is matched to a record by its keyLang name; the remaining non-blank
// cells are added to that record's name mapping through the map's indexed
// mutation path. Rows whose keyLang cell names no record fail the merge, as
// do translations already claimed by a different record.
func MergeNamesCSV(m *datamap.DataMap, r io.Reader, keyLang string) error {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read translation header: %w", err)
	}

	keyIdx := -1
	for i, code := range header {
		if code == "" {
			return fmt.Errorf("translation header column %d is blank", i)
		}
		if code == keyLang {
			keyIdx = i
		}
	}
	if keyIdx == -1 {
		return fmt.Errorf("translation header has no %q column", keyLang)
	}

	for row := 1; ; row++ {
		cells, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read translation row %d: %w", row, err)
		}

		base := cells[keyIdx]
		if base == "" {
			continue
		}
		rec, ok := m.EntryOf(keyLang, base)
		if !ok {
			return fmt.Errorf("translation row %d: no record named %q in %q", row, base, keyLang)
		}

		nv, err := rec.Get(datamap.FieldName)
		if err != nil {
			return err
		}
		names := nv.(*datamap.Dict)
		for i, cell := range cells {
			if i == keyIdx || cell == "" {
				continue
			}
			names.Set(header[i], datamap.String(cell))
		}
		if err := rec.Set(datamap.FieldName, names); err != nil {
			return fmt.Errorf("translation row %d (%q): %w", row, base, err)
		}
	}
}
