package form

import "github.com/goliatone/go-formflow/pkg/schema"

// Assemble projects the schema and state into the final keyed record. Every
// field contributes one assembly step in schema order: multi-select fields
// resolve to their selection set as a sorted slice (empty slice when
// untouched), all others to their scalar (empty string when untouched).
//
// Assemble performs no validation; callers gate it behind Complete. Invoked
// directly it will happily emit defaults for untouched fields.
func Assemble(s schema.FormSchema, state *State) Values {
	out := make(Values, len(s.Fields))
	for i, field := range s.Fields {
		key := schema.FieldKey(field, i)
		if field.MultiSelect() {
			out[key] = ListValue(state.Selections(key))
			continue
		}
		value, _ := state.Scalar(key)
		out[key] = ScalarValue(field.Type, value)
	}
	return out
}
