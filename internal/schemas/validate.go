// Package schemas validates parser output against its JSON Schema.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed parsed_profile.schema.json
var parsedProfileSchema string

// ParsedProfileSchema returns the embedded schema document.
func ParsedProfileSchema() string {
	return parsedProfileSchema
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

func schema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(parsedProfileSchema))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Message: "invalid parsed profile schema", Cause: compileErr}
		}
	})
	return compiled, compileErr
}

// ValidateParsedProfile checks a JSON document against the schema.
func ValidateParsedProfile(document []byte) error {
	s, err := schema()
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// Validate marshals v and validates it against the schema.
func Validate(v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return ValidateParsedProfile(doc)
}
