// Package spec embeds the JSON Schema of the AST document format and
// validates incoming documents against it before they are decoded.
package spec

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// ErrInvalidDocument reports a document that failed schema validation. The
// error text lists every violation.
var ErrInvalidDocument = errors.New("invalid AST document")

// Schema returns the embedded JSON Schema text.
func Schema() string {
	return schemaJSON
}

// Validate checks an AST JSON document against the schema. A nil return
// means the document is safe to hand to the decoder.
func Validate(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for _, violation := range result.Errors() {
		sb.WriteString("\n  - ")
		sb.WriteString(violation.Field())
		sb.WriteString(": ")
		sb.WriteString(violation.Description())
	}

	return fmt.Errorf("%w:%s", ErrInvalidDocument, sb.String())
}

// Violations returns the individual validation failures of a document, one
// string per violation, empty when the document is valid.
func Violations(document []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", violation.Field(), violation.Description()))
	}

	return violations, nil
}
