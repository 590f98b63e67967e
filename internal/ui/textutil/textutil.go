// Package textutil provides unicode-aware width helpers for table layout.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// ColumnWidth returns the width needed to show title and every cell,
// clamped to [minWidth, maxWidth].
func ColumnWidth(title string, cells []string, minWidth, maxWidth int) int {
	w := Width(title)
	for _, c := range cells {
		if cw := Width(c); cw > w {
			w = cw
		}
	}
	if w < minWidth {
		w = minWidth
	}
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return w
}

// FitWidths shrinks the widest entries one column at a time until the
// widths sum to at most total, never going below floor. The input is
// not modified.
func FitWidths(widths []int, total, floor int) []int {
	out := append([]int(nil), widths...)
	sum := 0
	for _, w := range out {
		sum += w
	}
	for sum > total {
		widest := -1
		for i, w := range out {
			if w > floor && (widest < 0 || w > out[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		out[widest]--
		sum--
	}
	return out
}
