package adp

import "github.com/google/uuid"

// RowID identifies a row by its position in the fetched array. It is
// assigned once when the Dataset is built and never changes.
type RowID int

// Record is a Row paired with its stable identifier.
type Record struct {
	ID  RowID
	Row Row
}

// Dataset is the fixed, ordered result of one load.
type Dataset struct {
	// LoadID correlates log lines and spans for a single fetch.
	LoadID  string
	Records []Record
}

// NewDataset assigns IDs to rows in order.
func NewDataset(rows []Row) Dataset {
	recs := make([]Record, len(rows))
	for i, r := range rows {
		recs[i] = Record{ID: RowID(i), Row: r}
	}
	return Dataset{LoadID: uuid.NewString(), Records: recs}
}

// Len returns the number of rows.
func (d Dataset) Len() int { return len(d.Records) }

// Record returns the row with the given id.
func (d Dataset) Record(id RowID) (Record, bool) {
	if id < 0 || int(id) >= len(d.Records) {
		return Record{}, false
	}
	return d.Records[id], true
}

// Keys returns the column names of the first row, which define the
// column set for the whole dataset.
func (d Dataset) Keys() []string {
	if len(d.Records) == 0 {
		return nil
	}
	return d.Records[0].Row.Keys()
}

// Columns returns Keys with NameColumn, when present, moved to the front.
func (d Dataset) Columns() []string {
	keys := d.Keys()
	cols := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == NameColumn {
			cols = append(cols, k)
		}
	}
	for _, k := range keys {
		if k != NameColumn {
			cols = append(cols, k)
		}
	}
	return cols
}
