package form

import (
	"testing"

	"github.com/goliatone/go-formflow/pkg/schema"
)

func scenarioSchema() schema.FormSchema {
	return schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Name", Type: schema.TypeText},
		{Label: "Role", Type: schema.TypeOptions, Options: []string{"Admin", "User"}},
	}}
}

func TestComplete_ScalarAndSingleSelect(t *testing.T) {
	s := scenarioSchema()
	state := NewState()

	if Complete(s, state) {
		t.Fatal("empty form should not be complete")
	}

	state.SetScalar("Name", "Alice")
	if Complete(s, state) {
		t.Fatal("form with unset Role should not be complete")
	}

	state.ToggleOption("Role", "Admin", false)
	if !Complete(s, state) {
		t.Fatal("form should be complete after both fields set")
	}
}

func TestComplete_MultiSelectNeedsNonEmptySet(t *testing.T) {
	s := schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Tags", Type: schema.TypeOptions, Options: []string{"A", "B", "C"}, Multiple: true},
	}}
	state := NewState()

	state.ToggleOption("Tags", "A", true)
	state.ToggleOption("Tags", "B", true)
	state.ToggleOption("Tags", "A", true)
	if !Complete(s, state) {
		t.Fatal("non-empty selection set should be complete")
	}
}

func TestComplete_NotMonotone(t *testing.T) {
	s := schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Tags", Type: schema.TypeOptions, Options: []string{"A"}, Multiple: true},
	}}
	state := NewState()

	state.ToggleOption("Tags", "A", true)
	if !Complete(s, state) {
		t.Fatal("expected complete after toggle on")
	}

	// Toggling off moves the form back to partially filled.
	state.ToggleOption("Tags", "A", true)
	if Complete(s, state) {
		t.Fatal("expected incomplete after toggle off")
	}
	if got := StatusOf(s, state); got != StatusPartiallyFilled {
		t.Fatalf("expected partial status, got %s", got)
	}
}

func TestComplete_PositionalKeyField(t *testing.T) {
	s := schema.FormSchema{Fields: []schema.FieldDefinition{{Type: schema.TypeText}}}
	state := NewState()

	if Complete(s, state) {
		t.Fatal("unset field_0 should block completeness")
	}
	state.SetScalar("field_0", "x")
	if !Complete(s, state) {
		t.Fatal("field_0 write should complete the form")
	}
}

func TestComplete_DegenerateOptionsFieldBlocksForever(t *testing.T) {
	for _, multiple := range []bool{true, false} {
		s := schema.FormSchema{Fields: []schema.FieldDefinition{
			{Label: "Choice", Type: schema.TypeOptions, Multiple: multiple},
		}}
		state := NewState()
		if Complete(s, state) {
			t.Fatalf("zero-option field (multiple=%v) must never be complete", multiple)
		}
	}
}

func TestStatusOf(t *testing.T) {
	s := scenarioSchema()
	state := NewState()

	if got := StatusOf(s, state); got != StatusEmpty {
		t.Fatalf("expected empty, got %s", got)
	}

	state.SetScalar("Name", "Alice")
	if got := StatusOf(s, state); got != StatusPartiallyFilled {
		t.Fatalf("expected partial, got %s", got)
	}

	state.ToggleOption("Role", "User", false)
	if got := StatusOf(s, state); got != StatusComplete {
		t.Fatalf("expected complete, got %s", got)
	}
}

func TestStatusOf_ZeroFieldSchema(t *testing.T) {
	if got := StatusOf(schema.FormSchema{}, NewState()); got != StatusComplete {
		t.Fatalf("zero-field schema is vacuously complete, got %s", got)
	}
}
