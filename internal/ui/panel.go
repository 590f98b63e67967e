package ui

// Panel selects which rows the table shows.
type Panel int

const (
	// PanelBoard shows undrafted rows, sorted and filtered.
	PanelBoard Panel = iota
	// PanelDrafted shows drafted rows in draft order; unchecking one
	// returns it to the board.
	PanelDrafted
)

func (p Panel) String() string {
	switch p {
	case PanelBoard:
		return "Board"
	case PanelDrafted:
		return "Drafted"
	default:
		return "Unknown"
	}
}

// Next cycles to the other panel.
func (p Panel) Next() Panel {
	if p == PanelBoard {
		return PanelDrafted
	}
	return PanelBoard
}
