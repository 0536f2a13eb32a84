// Package payload recovers typed JSON objects embedded in free-text
// generation output.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"brainfuel/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var errNoObject = errors.New("no JSON object delimiters found")

// Schema is a named JSON Schema document.
type Schema struct {
	Name       string
	Definition string
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ExtractObject returns the substring from the first '{' to the last '}'.
func ExtractObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", domain.NewMalformedOutputError(errNoObject)
	}
	return text[start : end+1], nil
}

// Decode extracts the embedded object from text, validates it against schema
// and unmarshals it into out. A missing or unparseable object is a
// MALFORMED_GENERATION_OUTPUT error; a parseable object of the wrong shape is
// a SCHEMA_MISMATCH error.
func Decode(text string, schema *Schema, out any) error {
	raw, err := ExtractObject(text)
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.NewMalformedOutputError(fmt.Errorf("invalid JSON: %w", err))
	}

	compiled, err := compile(schema)
	if err != nil {
		return domain.NewInternalError(fmt.Sprintf("compile schema %q", schema.Name), err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return domain.NewSchemaMismatchError(err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return domain.NewSchemaMismatchError(err)
	}
	return nil
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema.Definition))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
