package adp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RankColumn is appended to every row read from CSV; it holds the
// row's 1-based position in the file.
const RankColumn = "rank"

// ReadCSV parses an ADP export. The first record is the header; each
// following record becomes a Row keyed by header in header order, with
// RankColumn appended. Short records are padded with nulls; a record
// longer than the header is an error. Repeated header names are
// suffixed .1, .2 and so on.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	header = dedupeHeader(header)

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("read csv: record on line %d: expected %d fields, saw %d", line, len(header), len(rec))
		}
		var row Row
		for i, name := range header {
			v := Null()
			if i < len(rec) {
				v = ParseCell(rec[i])
			}
			row.Set(name, v)
		}
		row.Set(RankColumn, Int(len(rows)+1))
		rows = append(rows, row)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// dedupeHeader renames repeated column names to name.1, name.2, ...,
// skipping any suffix already taken by another column.
func dedupeHeader(header []string) []string {
	out := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for _, h := range header {
		used[h] = true
	}
	seen := make(map[string]int, len(header))
	for i, h := range header {
		n := seen[h]
		seen[h] = n + 1
		if n == 0 {
			out[i] = h
			continue
		}
		name := fmt.Sprintf("%s.%d", h, n)
		for used[name] {
			n++
			name = fmt.Sprintf("%s.%d", h, n)
		}
		seen[h] = n + 1
		used[name] = true
		out[i] = name
	}
	return out
}
