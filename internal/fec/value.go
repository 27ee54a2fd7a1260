package fec

import (
	"github.com/jackc/pgx/v5/pgtype"

	"fecstream/internal/schema"
)

// Value is one decoded field value. Kind selects which typed slot is
// meaningful; the slot's Valid flag follows the pgtype convention, with
// Valid=false meaning the field was absent (empty) in the filing. Raw keeps
// the original text so values re-encode byte-exactly.
type Value struct {
	Kind schema.FieldType
	Raw  string

	Text pgtype.Text
	Int  pgtype.Int8
	Num  pgtype.Numeric
	Date pgtype.Date
	Bool pgtype.Bool
}

// Absent reports whether the field had no value.
func (v Value) Absent() bool {
	switch v.Kind {
	case schema.FieldInteger:
		return !v.Int.Valid
	case schema.FieldNumeric:
		return !v.Num.Valid
	case schema.FieldDate:
		return !v.Date.Valid
	case schema.FieldBool:
		return !v.Bool.Valid
	default:
		return !v.Text.Valid
	}
}

// String returns the value as it appeared in the filing.
func (v Value) String() string { return v.Raw }

// Field is a named decoded value within a row.
type Field struct {
	Name  string
	Value Value
}

// Row is one decoded itemization record, tagged with its record type code
// and source line number. Field order follows the schema's ordinal order.
type Row struct {
	Code       string
	LineNumber int
	Fields     []Field
}

// Get returns the value of the named field.
func (r Row) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Batch is a bounded group of consecutive rows sharing one record type code,
// the unit handed to downstream consumers. Once emitted, a batch is owned
// solely by its consumer.
type Batch struct {
	Code string
	Rows []Row
}
