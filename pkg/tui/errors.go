package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C). The runner
	// cancels the session before returning it.
	ErrAborted = errors.New("tui: aborted")
	// ErrIncomplete is returned when a pass over the schema cannot reach a
	// complete form, which only happens with degenerate zero-option fields.
	// Submission stays silently blocked per the engine contract.
	ErrIncomplete = errors.New("tui: form cannot be completed")
)
