package ui

import (
	"fmt"
	"strings"

	"draftboard/internal/adp"
	"draftboard/internal/board"
	"draftboard/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// DraftedColumn is the synthetic checkbox column pinned before the data.
const DraftedColumn = "Drafted"

const (
	minColumnWidth = 3
	maxColumnWidth = 28
	minTableHeight = 3
)

// checkbox renders a row's draft state.
func checkbox(s board.DraftState) string {
	switch s {
	case board.StateFading:
		return "[~]"
	case board.StateDrafted:
		return "[x]"
	default:
		return "[ ]"
	}
}

func sortArrow(d board.Direction) string {
	if d == board.Descending {
		return "▼"
	}
	return "▲"
}

// headerTitle decorates a column name with the sort arrow and, on the
// board panel, the selection marker.
func (v *DraftBoardView) headerTitle(col string, idx int) string {
	title := col
	if s := v.state.Sort(); s.Column == col {
		title += " " + sortArrow(s.Direction)
	}
	if v.panel == PanelBoard && idx == v.column {
		title = "›" + title
	}
	return title
}

// refresh re-derives the table from the board. It runs after every
// transition; the cursor keeps its index, clamped to the new row count.
func (v *DraftBoardView) refresh() {
	cols := v.state.Columns()
	if v.column >= len(cols) {
		v.column = max(len(cols)-1, 0)
	}

	var recs []adp.Record
	if v.panel == PanelDrafted {
		recs = v.state.Drafted()
	} else {
		recs = v.state.Rows()
	}

	ids := make([]adp.RowID, len(recs))
	cells := make([][]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
		row := make([]string, 0, len(cols)+1)
		row = append(row, checkbox(v.state.State(rec.ID)))
		for _, c := range cols {
			val, _ := rec.Row.Get(c)
			row = append(row, val.String())
		}
		cells[i] = row
	}

	titles := make([]string, 0, len(cols)+1)
	titles = append(titles, DraftedColumn)
	for i, c := range cols {
		titles = append(titles, v.headerTitle(c, i))
	}

	widths := make([]int, len(titles))
	column := make([]string, len(cells))
	for j, title := range titles {
		for i := range cells {
			column[i] = cells[i][j]
		}
		widths[j] = textutil.ColumnWidth(title, column, minColumnWidth, maxColumnWidth)
	}
	if v.width > 0 {
		// Box border takes two columns, cell padding two per column.
		avail := v.width - 2 - 2*len(titles)
		widths = textutil.FitWidths(widths, avail, minColumnWidth)
	}

	columns := make([]table.Column, len(titles))
	for j, title := range titles {
		columns[j] = table.Column{Title: title, Width: widths[j]}
	}
	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		rows[i] = table.Row(c)
	}

	cursor := v.table.Cursor()
	v.rowIDs = ids
	// Clear rows first so the table never renders rows against a
	// column set of a different length.
	v.table.SetRows(nil)
	v.table.SetColumns(columns)
	v.table.SetRows(rows)
	if v.height > 0 {
		v.table.SetHeight(max(v.height-v.chromeHeight(len(rows) == 0), minTableHeight))
	}
	v.table.SetCursor(min(max(cursor, 0), max(len(rows)-1, 0)))
}

// chromeHeight counts the lines View draws outside the table. The
// table's own header is already subtracted by table.SetHeight.
func (v *DraftBoardView) chromeHeight(empty bool) int {
	h := lipgloss.Height(Styles.Title.Render(v.title))
	h++    // status
	h += 2 // box border
	if empty {
		h++
	}
	if v.filterLineShown() {
		h++
	}
	return h + lipgloss.Height(v.help.View(v.keys))
}

func (v *DraftBoardView) filterLineShown() bool {
	return v.filtering || v.state.Filter() != ""
}

// View implements tea.Model.
func (v *DraftBoardView) View() string {
	switch v.state.Status() {
	case board.StatusLoading:
		return v.spinner.View() + " " + Styles.Status.Render("Loading ADP data...") + "\n"
	case board.StatusFailed:
		style := Styles.Error
		if v.width > 0 {
			style = style.Width(v.width)
		}
		return style.Render(v.state.Err()) + "\n"
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(v.title) + "\n")
	if v.state.Dataset().Len() == 0 {
		b.WriteString(Styles.Empty.Render("No data found.") + "\n")
		b.WriteString(v.help.View(v.keys))
		return b.String()
	}

	b.WriteString(v.statusLine() + "\n")
	b.WriteString(Styles.Box.Render(v.table.View()) + "\n")
	if len(v.rowIDs) == 0 {
		b.WriteString(Styles.Empty.Render(v.emptyText()) + "\n")
	}
	if v.filtering {
		b.WriteString(v.filter.View() + "\n")
	} else if f := v.state.Filter(); f != "" {
		b.WriteString(Styles.Filter.Render("filter: "+f) + "\n")
	}
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

func (v *DraftBoardView) statusLine() string {
	total := v.state.Dataset().Len()
	drafted := v.state.DraftedCount()
	parts := []string{
		strings.ToUpper(v.panel.String()),
		fmt.Sprintf("%d available", total-drafted),
		fmt.Sprintf("%d drafted", drafted),
	}
	if n := v.state.Pending(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d pending", n))
	}
	if s := v.state.Sort(); s.IsSet() {
		parts = append(parts, "sort: "+Styles.Accent.Render(s.Column+" "+sortArrow(s.Direction)))
	}
	line := Styles.Status.Render(strings.Join(parts, " · "))
	if v.width > 0 && textutil.Width(line) > v.width {
		line = Styles.Status.Render(textutil.Truncate(strings.Join(parts, " · "), v.width))
	}
	return line
}

func (v *DraftBoardView) emptyText() string {
	switch {
	case v.panel == PanelDrafted:
		return "No players drafted yet."
	case v.state.Filter() != "":
		return "No players match the filter."
	default:
		return "Every player has been drafted."
	}
}
