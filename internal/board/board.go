// Package board is the state container behind the draft board view.
//
// A Board owns the loaded dataset, the sort configuration, the name
// filter and the draft state of every row. All mutation goes through
// its methods, which are plain synchronous transitions: no timers, no
// I/O. The caller schedules the fade delay and reports back through
// CompleteFade.
package board

import (
	"slices"

	"draftboard/internal/adp"
)

// Status is the load state of the board.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "Loading"
	case StatusReady:
		return "Ready"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// DraftState is the per-row state machine:
// Visible -> Fading (Check), Fading -> Drafted (CompleteFade),
// Fading|Drafted -> Visible (Uncheck).
type DraftState int

const (
	StateVisible DraftState = iota
	StateFading
	StateDrafted
)

func (s DraftState) String() string {
	switch s {
	case StateVisible:
		return "Visible"
	case StateFading:
		return "Fading"
	case StateDrafted:
		return "Drafted"
	default:
		return "Unknown"
	}
}

// Board holds all view state for one draft board.
type Board struct {
	status Status
	errMsg string
	data   adp.Dataset

	sort   SortConfig
	filter string

	// fading maps a row to the generation of its pending fade timer.
	fading  map[adp.RowID]uint64
	drafted map[adp.RowID]struct{}
	// history lists rows in the order they were checked; rows leave it
	// when unchecked. Drafted() and Undo() read it.
	history []adp.RowID
	nextGen uint64
}

// New returns an empty board in the Loading state.
func New() *Board {
	return &Board{
		fading:  make(map[adp.RowID]uint64),
		drafted: make(map[adp.RowID]struct{}),
	}
}

func (b *Board) Status() Status       { return b.status }
func (b *Board) Err() string          { return b.errMsg }
func (b *Board) Dataset() adp.Dataset { return b.data }

// Loaded installs a freshly fetched dataset and clears any error.
func (b *Board) Loaded(ds adp.Dataset) {
	b.status = StatusReady
	b.errMsg = ""
	b.data = ds
	b.resetDraft()
}

// Failed records a load failure. The dataset is left empty.
func (b *Board) Failed(err error) {
	b.status = StatusFailed
	b.errMsg = "unknown error"
	if err != nil {
		b.errMsg = err.Error()
	}
	b.data = adp.Dataset{}
	b.resetDraft()
}

func (b *Board) resetDraft() {
	clear(b.fading)
	clear(b.drafted)
	b.history = nil
}

// Columns returns the data columns to render: the first row's keys with
// adp.NameColumn pinned first.
func (b *Board) Columns() []string { return b.data.Columns() }

// State reports the draft state of a row.
func (b *Board) State(id adp.RowID) DraftState {
	if _, ok := b.drafted[id]; ok {
		return StateDrafted
	}
	if _, ok := b.fading[id]; ok {
		return StateFading
	}
	return StateVisible
}

// Check starts the fade of a visible row and returns the generation the
// caller must pass to CompleteFade once the delay has elapsed. It
// reports false when the row is unknown or not visible.
func (b *Board) Check(id adp.RowID) (uint64, bool) {
	if _, ok := b.data.Record(id); !ok {
		return 0, false
	}
	if b.State(id) != StateVisible {
		return 0, false
	}
	b.nextGen++
	b.fading[id] = b.nextGen
	b.history = append(b.history, id)
	return b.nextGen, true
}

// CompleteFade moves a fading row to drafted. It is a no-op unless the
// row is still fading under gen, so timers for cancelled fades are
// harmless.
func (b *Board) CompleteFade(id adp.RowID, gen uint64) bool {
	cur, ok := b.fading[id]
	if !ok || cur != gen {
		return false
	}
	delete(b.fading, id)
	b.drafted[id] = struct{}{}
	return true
}

// Uncheck returns a fading or drafted row to visible. For a fading row
// this cancels the pending transition.
func (b *Board) Uncheck(id adp.RowID) bool {
	switch b.State(id) {
	case StateFading:
		delete(b.fading, id)
	case StateDrafted:
		delete(b.drafted, id)
	default:
		return false
	}
	if i := slices.Index(b.history, id); i >= 0 {
		b.history = slices.Delete(b.history, i, i+1)
	}
	return true
}

// Undo unchecks the most recently checked row that is still fading or
// drafted.
func (b *Board) Undo() (adp.RowID, bool) {
	if len(b.history) == 0 {
		return 0, false
	}
	id := b.history[len(b.history)-1]
	return id, b.Uncheck(id)
}

// CancelPending returns every fading row to visible, invalidating all
// outstanding fade timers. It returns how many fades were cancelled.
func (b *Board) CancelPending() int {
	n := 0
	for id := range b.fading {
		if b.Uncheck(id) {
			n++
		}
	}
	return n
}

// Pending reports how many rows are fading.
func (b *Board) Pending() int { return len(b.fading) }

// DraftedCount reports how many rows are drafted.
func (b *Board) DraftedCount() int { return len(b.drafted) }

// Drafted returns drafted rows in the order they were checked.
func (b *Board) Drafted() []adp.Record {
	out := make([]adp.Record, 0, len(b.drafted))
	for _, id := range b.history {
		if _, ok := b.drafted[id]; !ok {
			continue
		}
		if rec, ok := b.data.Record(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Rows returns the derived view: every row not drafted that matches the
// filter, ordered by the active sort. Fading rows stay in the view.
// The dataset itself is never reordered.
func (b *Board) Rows() []adp.Record {
	match := b.filterMatches()
	out := make([]adp.Record, 0, b.data.Len())
	for _, rec := range b.data.Records {
		if _, ok := b.drafted[rec.ID]; ok {
			continue
		}
		if match != nil && !match[rec.ID] {
			continue
		}
		out = append(out, rec)
	}
	sortRecords(out, b.sort)
	return out
}
