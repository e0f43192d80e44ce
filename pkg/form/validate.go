package form

import "github.com/goliatone/go-formflow/pkg/schema"

// FieldComplete reports whether the field at index holds a usable value:
// a non-empty selection set for multi-select options fields, a non-empty
// scalar for everything else. An options field with no options can never be
// complete, which silently blocks the whole form; that is the documented
// degenerate case, not an error.
func FieldComplete(field schema.FieldDefinition, index int, state *State) bool {
	key := schema.FieldKey(field, index)
	if field.MultiSelect() {
		return len(state.Selections(key)) > 0
	}
	value, _ := state.Scalar(key)
	return value != ""
}

// Complete reports whether every field in the schema is complete. It is a
// pure function of (schema, state), recomputed fresh on every call; nothing
// is cached, so mutations never need to invalidate anything. Any single
// incomplete field fails the whole form.
func Complete(s schema.FormSchema, state *State) bool {
	for i, field := range s.Fields {
		if !FieldComplete(field, i, state) {
			return false
		}
	}
	return true
}
