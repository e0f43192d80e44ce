package form

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Value is the resolved submission value for a single field: a scalar string
// or, for multi-select fields, a selection list. Kind carries the schema
// type tag so consumers can dispatch without re-reading the schema.
type Value struct {
	Kind   schema.TypeTag
	Multi  bool
	Scalar string
	List   []string
}

// ScalarValue builds a scalar Value for the given type tag.
func ScalarValue(kind schema.TypeTag, value string) Value {
	return Value{Kind: kind, Scalar: value}
}

// ListValue builds a selection-list Value. The list is treated as a set
// snapshot; a nil list marshals as an empty sequence, not null.
func ListValue(list []string) Value {
	return Value{Kind: schema.TypeOptions, Multi: true, List: list}
}

// MarshalJSON emits the wire shape callers expect: a plain string for
// scalars, an array of strings for selection lists.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Multi {
		if v.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Scalar)
}

// String renders the value for human-readable output.
func (v Value) String() string {
	if v.Multi {
		return strings.Join(v.List, ", ")
	}
	return v.Scalar
}

// Values is the assembled, submission-ready record: one entry per distinct
// field key. Label collisions collapse entries, last field wins.
type Values map[string]Value
