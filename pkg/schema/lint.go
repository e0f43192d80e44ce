package schema

import "fmt"

// Issue describes a schema smell detected by Lint. Issues never stop the
// engine: a colliding label degrades to last-write-wins and a choice field
// without options is simply unsatisfiable. Callers that need hard failures
// should reject schemas with issues before opening a form.
type Issue struct {
	Index   int
	Key     string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("field %d (%s): %s", i.Index, i.Key, i.Message)
}

// Lint scans a schema for duplicate non-empty labels and for options fields
// with an empty option list. The returned slice is nil for a clean schema.
func Lint(s FormSchema) []Issue {
	var issues []Issue
	seen := make(map[string]int, len(s.Fields))

	for i, field := range s.Fields {
		key := FieldKey(field, i)

		if field.Label != "" {
			if first, ok := seen[field.Label]; ok {
				issues = append(issues, Issue{
					Index:   i,
					Key:     key,
					Message: fmt.Sprintf("label duplicates field %d; values collide on one key", first),
				})
			} else {
				seen[field.Label] = i
			}
		}

		if field.Type == TypeOptions && len(field.Options) == 0 {
			issues = append(issues, Issue{
				Index:   i,
				Key:     key,
				Message: "options field has no options; it can never be completed",
			})
		}
	}
	return issues
}
