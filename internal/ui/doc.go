// Package ui provides the terminal user interface for studentsearch.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. Update runs on the program's event
// loop and is the only place view state changes. The search field is
// debounced: keystrokes update the raw query immediately and are pushed into
// a debounce.Debouncer, whose timer hands the settled query to a one-slot
// channel. A listening command turns it into a querySettledMsg, and only
// then is the result list recomputed. The branch dropdown is not debounced.
//
// # Package Structure
//
//   - app.go: Model, Options, focus handling, key dispatch and Run
//   - search.go: debounced query plumbing and the search field
//   - form.go: add-student inputs and submission through form.Controller
//   - results.go: filtered record cache, highlighted rows, count line
//   - header.go: title bar, input rows and command bar
//   - modal.go, help.go: blocking notice and help overlays
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Result Caching
//
// The visible records are cached on three keys: settled query, store
// version and branch filter. Changing any of them recomputes the list;
// theme and size changes only re-render it.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:  ctx,
//		Store:    store,
//		Form:     form.New(store),
//		Logger:   logger,
//		Debounce: cfg.Debounce,
//	})
//
// # Key Bindings
//
//   - Tab / Shift+Tab: Move between search, branch, form fields and results
//   - Ctrl+B: Cycle the branch filter from anywhere
//   - h/l or Left/Right: Change the focused dropdown
//   - Enter: Add the student typed into the form
//   - Ctrl+F or Esc: Back to search; Ctrl+N: Jump to the add form
//   - Ctrl+T: Cycle theme
//   - F1: Help
//   - Ctrl+C: Exit
package ui
