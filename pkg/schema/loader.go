package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a schema document from JSON or YAML bytes. The source name
// is only used in error messages. Unlike the engine, which degrades on
// degenerate schemas, the loader rejects malformed documents early: an
// unknown type tag or an empty field list is an error.
func Parse(data []byte, source string) (FormSchema, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return FormSchema{}, fmt.Errorf("schema: file %s is empty", source)
	}

	var doc FormSchema
	if err := decode(data, source, &doc); err != nil {
		return FormSchema{}, err
	}

	if len(doc.Fields) == 0 {
		return FormSchema{}, fmt.Errorf("schema: file %s defines no fields", source)
	}
	for i, field := range doc.Fields {
		if !field.Type.Valid() {
			return FormSchema{}, fmt.Errorf("schema: file %s field %d has unknown type %q", source, i, field.Type)
		}
	}

	return sanitizeSchema(doc), nil
}

// LoadFS walks fsys and parses every .json/.yaml/.yml file into a schema
// keyed by its path. A nil filesystem yields an empty map.
func LoadFS(fsys fs.FS) (map[string]FormSchema, error) {
	schemas := make(map[string]FormSchema)
	if fsys == nil {
		return schemas, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return err
		}
		schemas[path] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schemas, nil
}

func decode(data []byte, source string, out *FormSchema) error {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("schema: parse yaml %s: %w", source, err)
		}
		return nil
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("schema: parse json %s: %w", source, err)
		}
		return nil
	default:
		// Sniff: JSON documents start with a brace once trimmed.
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "{") {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("schema: parse json %s: %w", source, err)
			}
			return nil
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("schema: parse yaml %s: %w", source, err)
		}
		return nil
	}
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func sanitizeSchema(doc FormSchema) FormSchema {
	doc.Title = sanitizeText(doc.Title)
	doc.Description = sanitizeText(doc.Description)
	for i := range doc.Fields {
		doc.Fields[i].Label = sanitizeText(doc.Fields[i].Label)
		for j, option := range doc.Fields[i].Options {
			doc.Fields[i].Options[j] = sanitizeText(option)
		}
	}
	return doc
}
