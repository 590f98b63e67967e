package ui

import (
	"draftboard/internal/adp"
)

// DatasetLoadedMsg carries the result of a successful fetch.
type DatasetLoadedMsg struct {
	Dataset adp.Dataset
}

// LoadFailedMsg is sent when the fetch fails for any reason.
type LoadFailedMsg struct {
	Err error
}

// fadeDoneMsg fires once the fade delay for a checked row has elapsed.
// Gen ties it to the Check that scheduled it.
type fadeDoneMsg struct {
	ID  adp.RowID
	Gen uint64
}
