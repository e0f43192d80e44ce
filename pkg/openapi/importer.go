package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Import loads an OpenAPI 3 document and converts the request body of the
// operation identified by operationID into a FormSchema. The request body's
// JSON media type is preferred; the first declared media type is the
// fallback. Properties are emitted sorted by name since OpenAPI object
// properties carry no order.
func Import(ctx context.Context, raw []byte, operationID string) (schema.FormSchema, error) {
	if err := ctx.Err(); err != nil {
		return schema.FormSchema{}, err
	}
	if len(raw) == 0 {
		return schema.FormSchema{}, errors.New("openapi: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return schema.FormSchema{}, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body := requestSchema(operation.RequestBody)
	if body == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q has no request body schema", operationID)
	}

	out := schema.FormSchema{
		Title:       operation.Summary,
		Description: operation.Description,
		Fields:      convertProperties(body),
	}
	if len(out.Fields) == 0 {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q yields no form fields", operationID)
	}
	return out, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func convertProperties(body *openapi3.Schema) []schema.FieldDefinition {
	if body == nil || len(body.Properties) == 0 {
		return nil
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]schema.FieldDefinition, 0, len(names))
	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if field, ok := convertProperty(name, ref.Value); ok {
			fields = append(fields, field)
		}
	}
	return fields
}

func convertProperty(name string, prop *openapi3.Schema) (schema.FieldDefinition, bool) {
	field := schema.FieldDefinition{Label: propertyLabel(name, prop)}

	switch schemaType(prop) {
	case "string":
		if len(prop.Enum) > 0 {
			field.Type = schema.TypeOptions
			field.Options = stringifyEnum(prop.Enum)
			return field, true
		}
		field.Type = stringFieldType(prop.Format)
		return field, true
	case "integer", "number":
		field.Type = schema.TypeNumber
		return field, true
	case "boolean":
		field.Type = schema.TypeOptions
		field.Options = []string{"true", "false"}
		return field, true
	case "array":
		if prop.Items == nil || prop.Items.Value == nil || len(prop.Items.Value.Enum) == 0 {
			return schema.FieldDefinition{}, false
		}
		field.Type = schema.TypeOptions
		field.Options = stringifyEnum(prop.Items.Value.Enum)
		field.Multiple = true
		return field, true
	default:
		return schema.FieldDefinition{}, false
	}
}

func stringFieldType(format string) schema.TypeTag {
	switch strings.ToLower(format) {
	case "email", "idn-email":
		return schema.TypeEmail
	case "phone", "tel":
		return schema.TypePhone
	case "date", "date-time":
		return schema.TypeDate
	default:
		return schema.TypeText
	}
}

func propertyLabel(name string, prop *openapi3.Schema) string {
	if prop.Title != "" {
		return prop.Title
	}
	return humanizeName(name)
}

func schemaType(prop *openapi3.Schema) string {
	if prop.Type == nil {
		return ""
	}
	values := prop.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func stringifyEnum(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}
