// Package schemas provides JSON Schema validation for request payloads.
// The schema is embedded in the binary so validation never depends on the
// server's working directory.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed assessment_result.schema.json
var assessmentResultSchema string

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateAssessmentResult validates raw JSON against the assessment
// result schema before it is decoded. Malformed JSON and schema
// violations both surface as *ValidationError so the caller can treat
// them uniformly as client errors.
func ValidateAssessmentResult(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(assessmentResultSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ValidationError{Errors: []FieldError{
			{Field: "(body)", Message: fmt.Sprintf("invalid JSON: %v", err)},
		}}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		field := resultErr.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{
			Field:   field,
			Message: resultErr.Description(),
		})
	}
	return ve
}
