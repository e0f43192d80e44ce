package form

import "github.com/goliatone/go-formflow/pkg/schema"

// Hooks carries the caller callbacks for the two terminal actions. OnSubmit
// is invoked exactly once, and only with a complete form. OnCancel is
// optional and invoked at most once.
type Hooks struct {
	OnSubmit func(Values)
	OnCancel func()
}

// Session owns one schema and one State for the lifetime of a single form
// instance. It is single-threaded by contract: each interaction applies one
// mutation and readers derive validity on demand, so no locking is needed.
// After Submit or Cancel the state is discarded and the session is inert.
type Session struct {
	schema schema.FormSchema
	state  *State
	hooks  Hooks
	closed bool
}

// NewSession opens a session with an empty state.
func NewSession(s schema.FormSchema, hooks Hooks) *Session {
	return &Session{
		schema: s,
		state:  NewState(),
		hooks:  hooks,
	}
}

// Schema returns the schema this session was opened with.
func (s *Session) Schema() schema.FormSchema {
	return s.schema
}

// SetScalar forwards to State.SetScalar. Mutations on a closed session are
// dropped; the backing state is already gone.
func (s *Session) SetScalar(key, value string) {
	if s.closed {
		return
	}
	s.state.SetScalar(key, value)
}

// ToggleOption forwards to State.ToggleOption.
func (s *Session) ToggleOption(key, option string, multiple bool) {
	if s.closed {
		return
	}
	s.state.ToggleOption(key, option, multiple)
}

// State exposes the backing state for read access. Nil once closed.
func (s *Session) State() *State {
	return s.state
}

// Complete recomputes the submission gate.
func (s *Session) Complete() bool {
	return !s.closed && Complete(s.schema, s.state)
}

// Status derives the lifecycle view for the current state. Once a terminal
// action ran the state is gone, so the session reports StatusClosed rather
// than misreading the discarded state as untouched.
func (s *Session) Status() Status {
	if s.closed {
		return StatusClosed
	}
	return StatusOf(s.schema, s.state)
}

// Submit assembles and hands off the final record. It refuses to run twice
// (ErrClosed) and refuses incomplete forms (ErrIncomplete) without touching
// anything. On success the state is discarded and OnSubmit receives the
// assembled values.
func (s *Session) Submit() (Values, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if !Complete(s.schema, s.state) {
		return nil, ErrIncomplete
	}
	values := Assemble(s.schema, s.state)
	s.close()
	if s.hooks.OnSubmit != nil {
		s.hooks.OnSubmit(values)
	}
	return values, nil
}

// Cancel discards the state unconditionally, regardless of completeness,
// and fires OnCancel. Cancelling an already-closed session is a no-op, so
// OnCancel runs at most once.
func (s *Session) Cancel() {
	if s.closed {
		return
	}
	s.close()
	if s.hooks.OnCancel != nil {
		s.hooks.OnCancel()
	}
}

// Closed reports whether a terminal action already ran.
func (s *Session) Closed() bool {
	return s.closed
}

func (s *Session) close() {
	s.closed = true
	s.state = nil
}
