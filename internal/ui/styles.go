package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Retro phosphor palette.
const (
	ColorPhosphor = "#33FF33" // Bright green - primary text, titles
	ColorGlow     = "#B6FFB6" // Pale green - selected row
	ColorDim      = "#1F8F1F" // Dark green - borders, hints
	ColorAmber    = "#FFB000" // Amber - sort markers, filter prompt
	ColorDanger   = "#FF5555" // Red - load errors
	ColorScreen   = "#001A00" // Near-black green - selected row background
)

// Styles contains the shared style definitions for the board.
var Styles = struct {
	Title   lipgloss.Style // Bold phosphor, framed like a terminal banner
	Status  lipgloss.Style // Status line under the title
	Box     lipgloss.Style // Border around the table
	Error   lipgloss.Style // Load failure message
	Empty   lipgloss.Style // Empty states
	Hint    lipgloss.Style // Footer hints
	Filter  lipgloss.Style // Filter prompt
	Spinner lipgloss.Style // Loading spinner
	Accent  lipgloss.Style // Sort marker and counts
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPhosphor)).
		Border(lipgloss.DoubleBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorDim)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPhosphor)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorDim)),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Filter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAmber)),
	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPhosphor)),
	Accent: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAmber)),
}

// tableStyles returns the table styles for the phosphor theme.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		BorderBottom(true).
		Foreground(lipgloss.Color(ColorAmber)).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(lipgloss.Color(ColorPhosphor))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(ColorGlow)).
		Background(lipgloss.Color(ColorScreen)).
		Bold(true)
	return s
}
