package formflow

import (
	"context"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/tui"
)

// FormSchema aliases the schema container for callers that only import the
// root package.
type FormSchema = schema.FormSchema

// FieldDefinition aliases one schema entry.
type FieldDefinition = schema.FieldDefinition

// Values aliases the assembled submission record.
type Values = form.Values

// Hooks aliases the submit/cancel callbacks.
type Hooks = form.Hooks

// NewSession opens a form session over the supplied schema.
func NewSession(s FormSchema, hooks Hooks) *form.Session {
	return form.NewSession(s, hooks)
}

// Run opens a session, drives it interactively in the terminal, and returns
// the serialized submission. It is the simplest entry point for callers
// that just want to collect a record.
func Run(ctx context.Context, s FormSchema, hooks Hooks, options ...tui.Option) ([]byte, error) {
	session := form.NewSession(s, hooks)
	return tui.New(options...).Run(ctx, session)
}
