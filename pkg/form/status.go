package form

import "github.com/goliatone/go-formflow/pkg/schema"

// Status is the derived lifecycle view of a form instance. It is never
// stored: every mutation implicitly moves the status because StatusOf
// recomputes it from (schema, state) on demand.
type Status string

const (
	// StatusEmpty means no mutation has been applied yet.
	StatusEmpty Status = "empty"
	// StatusPartiallyFilled means some mutations happened but at least one
	// field is still incomplete. Completeness is not monotone: toggling an
	// option off a multi-select field can fall back here from complete.
	StatusPartiallyFilled Status = "partial"
	// StatusComplete means every field holds a usable value and the
	// submission gate is open.
	StatusComplete Status = "complete"
	// StatusClosed means a terminal action (submit or cancel) already ran
	// and the state is discarded. Only Session.Status reports it; StatusOf
	// has no closed notion since bare state carries no lifecycle.
	StatusClosed Status = "closed"
)

// StatusOf derives the current status. A zero-field schema is complete by
// vacuous truth regardless of mutations.
func StatusOf(s schema.FormSchema, state *State) Status {
	if Complete(s, state) {
		return StatusComplete
	}
	if !state.Touched() {
		return StatusEmpty
	}
	return StatusPartiallyFilled
}
