package ui

import (
	"context"
	"errors"
	"time"

	"draftboard/internal/adp"
	"draftboard/internal/board"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// DefaultFadeDelay is how long a checked row stays visible before it is drafted.
const DefaultFadeDelay = 500 * time.Millisecond

// DefaultTitle is shown above the table when Options.Title is empty.
const DefaultTitle = "Half PPR ADP Data"

var errNoFetcher = errors.New("no data source configured")

// Options configures a DraftBoardView.
type Options struct {
	Title     string
	FadeDelay time.Duration
	// Logger defaults to a no-op logger when nil.
	Logger *zerolog.Logger
}

// DraftBoardView is the root Bubble Tea model: one board, one table.
type DraftBoardView struct {
	fetcher Fetcher
	title   string
	delay   time.Duration
	logger  zerolog.Logger

	// ctx bounds the fetch; cancelled on quit.
	ctx    context.Context
	cancel context.CancelFunc

	state *board.Board
	panel Panel
	// column indexes state.Columns(); it is the column sort acts on.
	column    int
	filtering bool
	// rowIDs maps table rows to board rows for the current panel.
	rowIDs []adp.RowID

	table   table.Model
	filter  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	width  int
	height int
}

// Ensure DraftBoardView implements tea.Model.
var _ tea.Model = (*DraftBoardView)(nil)

// NewDraftBoardView creates a view that loads its rows from f on Init.
func NewDraftBoardView(f Fetcher, opts Options) *DraftBoardView {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.FadeDelay <= 0 {
		opts.FadeDelay = DefaultFadeDelay
	}

	keys := DefaultKeyMap()

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(20),
		table.WithKeyMap(tableKeyMap(keys)),
		table.WithStyles(tableStyles()),
	)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "player name"
	ti.CharLimit = 64
	ti.PromptStyle = Styles.Filter
	ti.TextStyle = Styles.Filter

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = Styles.Spinner

	h := help.New()
	h.Styles.ShortKey = Styles.Accent
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.FullKey = Styles.Accent
	h.Styles.FullDesc = Styles.Hint

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &DraftBoardView{
		fetcher: f,
		title:   opts.Title,
		delay:   opts.FadeDelay,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		state:   board.New(),
		panel:   PanelBoard,
		table:   t,
		filter:  ti,
		spinner: s,
		help:    h,
		keys:    keys,
	}
}

// Board exposes the underlying state container.
func (v *DraftBoardView) Board() *board.Board { return v.state }

// Panel returns the active panel.
func (v *DraftBoardView) Panel() Panel { return v.panel }

// Init implements tea.Model. It starts the spinner and the single fetch.
func (v *DraftBoardView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, fetchCmd(v.ctx, v.fetcher))
}

// Update implements tea.Model.
func (v *DraftBoardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.help.Width = msg.Width
		v.filter.Width = max(msg.Width-4, 10)
		v.refresh()
		return v, nil
	case spinner.TickMsg:
		if v.state.Status() != board.StatusLoading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case DatasetLoadedMsg:
		v.state.Loaded(msg.Dataset)
		v.column = 0
		v.refresh()
		return v, nil
	case LoadFailedMsg:
		v.state.Failed(msg.Err)
		v.logger.Error().Err(msg.Err).Msg("load failed")
		return v, nil
	case fadeDoneMsg:
		if v.state.CompleteFade(msg.ID, msg.Gen) {
			v.logger.Debug().Int("row", int(msg.ID)).Msg("drafted")
			v.refresh()
		}
		return v, nil
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *DraftBoardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, v.keys.ForceQuit) {
		return v.quit()
	}
	if v.filtering {
		return v.handleFilterKey(msg)
	}
	if key.Matches(msg, v.keys.Quit) {
		return v.quit()
	}
	if v.state.Status() != board.StatusReady {
		return nil
	}

	switch {
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		v.refresh()
	case key.Matches(msg, v.keys.Left):
		if v.column > 0 {
			v.column--
			v.refresh()
		}
	case key.Matches(msg, v.keys.Right):
		if v.column < len(v.state.Columns())-1 {
			v.column++
			v.refresh()
		}
	case key.Matches(msg, v.keys.Sort):
		cols := v.state.Columns()
		if v.panel == PanelBoard && v.column < len(cols) {
			v.state.RequestSort(cols[v.column])
			v.refresh()
		}
	case key.Matches(msg, v.keys.Toggle):
		return v.toggleSelected()
	case key.Matches(msg, v.keys.Undo):
		if id, ok := v.state.Undo(); ok {
			v.logger.Debug().Int("row", int(id)).Msg("undo")
			v.refresh()
		}
	case key.Matches(msg, v.keys.Panel):
		v.panel = v.panel.Next()
		v.table.GotoTop()
		v.refresh()
	case key.Matches(msg, v.keys.CancelInput):
		if v.state.Filter() != "" {
			v.filter.Reset()
			v.state.SetFilter("")
			v.refresh()
		}
	case key.Matches(msg, v.keys.Filter):
		if v.panel == PanelBoard {
			v.filtering = true
			v.filter.SetValue(v.state.Filter())
			v.filter.CursorEnd()
			cmd := v.filter.Focus()
			v.refresh()
			return cmd
		}
	default:
		var cmd tea.Cmd
		v.table, cmd = v.table.Update(msg)
		return cmd
	}
	return nil
}

func (v *DraftBoardView) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.CancelInput):
		v.filtering = false
		v.filter.Blur()
		v.filter.Reset()
		v.state.SetFilter("")
		v.refresh()
		return nil
	case key.Matches(msg, v.keys.AcceptInput):
		v.filtering = false
		v.filter.Blur()
		v.refresh()
		return nil
	}
	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.state.SetFilter(v.filter.Value())
	v.table.GotoTop()
	v.refresh()
	return cmd
}

// toggleSelected is the checkbox: visible rows start fading, fading rows
// are disabled, drafted rows (drafted panel) return to the board.
func (v *DraftBoardView) toggleSelected() tea.Cmd {
	id, ok := v.selectedID()
	if !ok {
		return nil
	}
	switch v.state.State(id) {
	case board.StateVisible:
		gen, ok := v.state.Check(id)
		if !ok {
			return nil
		}
		v.logger.Debug().Int("row", int(id)).Uint64("gen", gen).Msg("fading")
		v.refresh()
		return fadeCmd(id, gen, v.delay)
	case board.StateDrafted:
		v.state.Uncheck(id)
		v.logger.Debug().Int("row", int(id)).Msg("undrafted")
		v.refresh()
	}
	return nil
}

func (v *DraftBoardView) selectedID() (adp.RowID, bool) {
	c := v.table.Cursor()
	if c < 0 || c >= len(v.rowIDs) {
		return 0, false
	}
	return v.rowIDs[c], true
}

// quit cancels the fetch and every pending fade before exiting.
func (v *DraftBoardView) quit() tea.Cmd {
	v.cancel()
	if n := v.state.CancelPending(); n > 0 {
		v.logger.Debug().Int("cancelled", n).Msg("pending fades cancelled")
	}
	return tea.Quit
}
