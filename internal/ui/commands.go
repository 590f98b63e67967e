package ui

import (
	"context"
	"time"

	"draftboard/internal/adp"

	tea "github.com/charmbracelet/bubbletea"
)

// Fetcher loads the dataset. *adp.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context) (adp.Dataset, error)
}

// fetchCmd returns a command that performs the single load and reports
// DatasetLoadedMsg or LoadFailedMsg.
func fetchCmd(ctx context.Context, f Fetcher) tea.Cmd {
	return func() tea.Msg {
		if f == nil {
			return LoadFailedMsg{Err: errNoFetcher}
		}
		ds, err := f.Fetch(ctx)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return DatasetLoadedMsg{Dataset: ds}
	}
}

// fadeCmd schedules the fading -> drafted step for id after delay.
func fadeCmd(id adp.RowID, gen uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return fadeDoneMsg{ID: id, Gen: gen}
	})
}
