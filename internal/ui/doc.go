// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for tracking applications:
//  1. [ListView] : Browse, search, and filter the tracked applications
//  2. [DetailView] : Inspect a single application
//  3. [FormView] : Add a new application or edit an existing one
//  4. [ConfirmDeleteView] : Confirm a delete before it is committed
//  5. [SavingView] : Block input while a commit is in flight
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Every mutation runs through the session layer, so the list always reflects the
// working copy and the status line reports whether the last save landed upstream.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
