package form

import "errors"

var (
	// ErrIncomplete signals a submit attempt while at least one field is
	// still unset. The gate is preventive: nothing is mutated or recorded.
	ErrIncomplete = errors.New("form: form is incomplete")
	// ErrClosed signals a terminal action on a session that already
	// submitted or cancelled.
	ErrClosed = errors.New("form: session is closed")
)
