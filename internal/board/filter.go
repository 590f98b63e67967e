package board

import (
	"strings"

	"draftboard/internal/adp"

	"github.com/sahilm/fuzzy"
)

// Filter returns the current name filter.
func (b *Board) Filter() string { return b.filter }

// SetFilter sets the fuzzy name filter. Blank clears it.
func (b *Board) SetFilter(s string) { b.filter = strings.TrimSpace(s) }

// FilterColumn is the column the filter matches against: adp.NameColumn
// when present, otherwise the first column.
func (b *Board) FilterColumn() string {
	cols := b.Columns()
	if len(cols) == 0 {
		return ""
	}
	return cols[0]
}

// filterMatches returns the set of rows matching the filter, or nil when
// no filter is active.
func (b *Board) filterMatches() map[adp.RowID]bool {
	if b.filter == "" {
		return nil
	}
	col := b.FilterColumn()
	names := make([]string, len(b.data.Records))
	for i, rec := range b.data.Records {
		v, _ := rec.Row.Get(col)
		names[i] = v.String()
	}
	match := make(map[adp.RowID]bool)
	for _, m := range fuzzy.Find(b.filter, names) {
		match[b.data.Records[m.Index].ID] = true
	}
	return match
}
