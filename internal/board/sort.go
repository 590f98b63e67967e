package board

import (
	"cmp"
	"slices"

	"draftboard/internal/adp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the sort order of a column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortConfig is the active sort. An empty Column means unsorted.
type SortConfig struct {
	Column    string
	Direction Direction
}

// IsSet reports whether a sort column is active.
func (s SortConfig) IsSet() bool { return s.Column != "" }

// Sort returns the active sort configuration.
func (b *Board) Sort() SortConfig { return b.sort }

// RequestSort flips an ascending sort on column to descending; any other
// request sorts column ascending.
func (b *Board) RequestSort(column string) {
	if b.sort.Column == column && b.sort.Direction == Ascending {
		b.sort.Direction = Descending
		return
	}
	b.sort = SortConfig{Column: column, Direction: Ascending}
}

// sortRecords stable-sorts recs in place by cfg. Ties keep fetch order.
func sortRecords(recs []adp.Record, cfg SortConfig) {
	if !cfg.IsSet() {
		return
	}
	coll := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(recs, func(x, y adp.Record) int {
		a, _ := x.Row.Get(cfg.Column)
		b, _ := y.Row.Get(cfg.Column)
		c := compareValues(coll, a, b)
		if cfg.Direction == Descending {
			return -c
		}
		return c
	})
}

// CompareValues orders two cells for an ascending sort: nulls last,
// numbers numerically, everything else case-insensitively.
func CompareValues(a, b adp.Value) int {
	return compareValues(collate.New(language.English, collate.IgnoreCase), a, b)
}

func compareValues(coll *collate.Collator, a, b adp.Value) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return 1
	case b.IsNull():
		return -1
	}
	if x, ok := a.Float(); ok {
		if y, ok := b.Float(); ok {
			return cmp.Compare(x, y)
		}
	}
	return coll.CompareString(a.String(), b.String())
}
