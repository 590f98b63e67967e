// Package ui implements the draft board terminal view with Bubble Tea.
//
// DraftBoardView owns a board.Board and translates messages into its
// transitions:
//   - DatasetLoadedMsg / LoadFailedMsg: result of the one-shot fetch
//   - key presses: column selection, sorting, drafting, filtering
//   - fadeDoneMsg: the delayed fading -> drafted step, scheduled with tea.Tick
//
// Everything the view shows is re-derived from the board after each
// transition; the table widget holds no state of its own beyond the cursor.
package ui
