package schema

import "fmt"

// TypeTag enumerates the field kinds the engine understands.
type TypeTag string

const (
	TypeText    TypeTag = "text"
	TypeEmail   TypeTag = "email"
	TypePhone   TypeTag = "phone"
	TypeNumber  TypeTag = "number"
	TypeDate    TypeTag = "date"
	TypeOptions TypeTag = "options"
)

// Valid reports whether the tag is one of the recognized kinds.
func (t TypeTag) Valid() bool {
	switch t {
	case TypeText, TypeEmail, TypePhone, TypeNumber, TypeDate, TypeOptions:
		return true
	}
	return false
}

// FieldDefinition describes a single control: its label, type, and — for
// choice fields — the option list and multiplicity. Multiple defaults to
// false and is only meaningful for TypeOptions.
type FieldDefinition struct {
	Label    string   `json:"label" yaml:"label"`
	Type     TypeTag  `json:"type" yaml:"type"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
	Multiple bool     `json:"multiple,omitempty" yaml:"multiple,omitempty"`
}

// MultiSelect reports whether the field stores a selection set rather than
// a scalar. Single-select options fields store the chosen option string
// directly, not a singleton set.
func (f FieldDefinition) MultiSelect() bool {
	return f.Type == TypeOptions && f.Multiple
}

// FormSchema is the ordered field list a form instance is built from. Order
// matters for prompting and for positional key fallback, not for validation.
type FormSchema struct {
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []FieldDefinition `json:"fields" yaml:"fields"`
}

// FieldKey derives the stable identifier used to store and retrieve a
// field's value: the label when non-empty, otherwise a positional fallback.
// Pure and deterministic. Keys are not guaranteed unique — two fields
// sharing a non-empty label collapse to the same key and the later field's
// stored value wins; see Lint for the stricter diagnostic.
func FieldKey(field FieldDefinition, index int) string {
	if field.Label != "" {
		return field.Label
	}
	return fmt.Sprintf("field_%d", index)
}
