// Package schema holds the static field schemas for FEC filing records.
//
// Every record in a filing is identified by a record type code (a form code
// like "F3" or a schedule code like "SA11AI") and decoded against the field
// schema registered for that code under the filing's declared format version.
// The schemas are a static fact base: they are loaded once from an embedded
// table and never mutated afterwards, so a [Registry] is safe for concurrent
// reads without locking.
package schema

import "fmt"

// FieldType represents the expected data type for a record field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
	FieldNumeric
	FieldDate
	FieldBool
)

// String returns the semantic type name as used in the schema table.
func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldInteger:
		return "integer"
	case FieldNumeric:
		return "numeric"
	case FieldDate:
		return "date"
	case FieldBool:
		return "boolean"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// ParseFieldType converts a semantic type name from the schema table to a
// FieldType. Accepts the aliases used across historical table exports.
func ParseFieldType(s string) (FieldType, error) {
	switch s {
	case "text", "string":
		return FieldText, nil
	case "integer", "int":
		return FieldInteger, nil
	case "numeric", "decimal", "float":
		return FieldNumeric, nil
	case "date":
		return FieldDate, nil
	case "boolean", "bool":
		return FieldBool, nil
	default:
		return FieldText, fmt.Errorf("unknown semantic type %q", s)
	}
}

// FieldSpec defines one positional field of a record schema.
type FieldSpec struct {
	Name     string    // Field name, e.g. "contribution_amount"
	Type     FieldType // Expected data type
	Required bool      // A non-empty value must be present at this position
}

// Schema is the ordered field layout for one (format version, record type
// code) pair. Position is authoritative: field N of a delimited line maps to
// Fields[N], regardless of names.
type Schema struct {
	Code    string // Record type code the schema was registered under
	Version string // Format version the schema was registered under
	Fields  []FieldSpec
}

// Field returns the spec at the given zero-based position.
func (s *Schema) Field(i int) (FieldSpec, bool) {
	if i < 0 || i >= len(s.Fields) {
		return FieldSpec{}, false
	}
	return s.Fields[i], true
}

// FieldNames returns the ordered field names.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// UnknownRecordTypeError is returned when no schema is registered for a
// record type code at or below the requested format version.
type UnknownRecordTypeError struct {
	Version string
	Code    string
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("no schema for record type %q at version %s or below", e.Code, e.Version)
}
