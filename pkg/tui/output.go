package tui

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/schema"
)

// Serialize encodes the assembled record in the requested format. The
// schema drives ordering for the text formats; colliding keys appear once.
func Serialize(s schema.FormSchema, values form.Values, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(s, values)), nil
	default:
		return json.Marshal(values)
	}
}

func encodeForm(values form.Values) string {
	encoded := url.Values{}
	for key, value := range values {
		if value.Multi {
			for _, option := range value.List {
				encoded.Add(key+"[]", option)
			}
			continue
		}
		encoded.Set(key, value.Scalar)
	}
	return encoded.Encode()
}

func prettyPrint(s schema.FormSchema, values form.Values) string {
	var b strings.Builder
	seen := make(map[string]struct{}, len(values))
	for i, field := range s.Fields {
		key := schema.FieldKey(field, i)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		fmt.Fprintf(&b, "%s: %s\n", key, values[key])
	}
	return b.String()
}
