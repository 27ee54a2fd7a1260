package fec

import (
	"fmt"
	"strings"

	"fecstream/internal/schema"
)

// FieldSeparator is the dedicated delimiter of format version 6 and later
// (ASCII 28, "file separator"). It cannot occur in field text, which is why
// version 6 dropped commas: text fields may legitimately contain them.
const FieldSeparator byte = 0x1C

// DelimiterFor returns the itemization delimiter for a format version:
// comma before version 6, FieldSeparator from version 6 on.
func DelimiterFor(version string) byte {
	v, err := schema.ParseVersion(version)
	if err == nil && v.Major >= 6 {
		return FieldSeparator
	}
	return ','
}

// Decoder splits delimited lines and coerces positional values against a
// schema. One decoder serves a whole filing; the delimiter era is fixed by
// the header's format version.
type Decoder struct {
	version string
	delim   byte
	strict  bool
}

// NewDecoder creates a decoder for the given format version.
func NewDecoder(version string, strict bool) *Decoder {
	return &Decoder{version: version, delim: DelimiterFor(version), strict: strict}
}

// Split breaks a raw line into positional field values. In the comma era
// individual values may carry vendor quoting, which is stripped; the FS era
// never quotes.
func (d *Decoder) Split(text string) []string {
	values := strings.Split(text, string(d.delim))
	if d.delim == ',' {
		for i, v := range values {
			values[i] = trimQuotes(v)
		}
	}
	return values
}

// Code returns the record type code of a raw line (its first field).
func (d *Decoder) Code(text string) string {
	if i := strings.IndexByte(text, d.delim); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(trimQuotes(text))
}

// Decode maps a raw line's positional values onto a schema and coerces each
// to its semantic type. Position is authoritative; names never participate.
//
// Empty slots are absent for optional fields. A required field that is
// empty or past the end of the line fails with MissingRequiredFieldError.
// Values beyond the schema are kept as string-typed fields named extra1,
// extra2, ... in lenient mode and fail with FieldCountMismatchError in
// strict mode.
func (d *Decoder) Decode(line Line, sch *schema.Schema) (Row, error) {
	values := d.Split(line.Text)
	code := strings.TrimSpace(values[0])

	row := Row{
		Code:       code,
		LineNumber: line.Number,
		Fields:     make([]Field, 0, len(sch.Fields)),
	}

	for i, spec := range sch.Fields {
		var raw string
		if i < len(values) {
			raw = strings.TrimSpace(values[i])
		}
		if raw == "" {
			if spec.Required {
				return Row{}, &MissingRequiredFieldError{Code: code, Field: spec.Name, Line: line.Number}
			}
			row.Fields = append(row.Fields, Field{Name: spec.Name, Value: Value{Kind: spec.Type}})
			continue
		}

		v, ok := coerce(raw, spec.Type)
		if !ok {
			return Row{}, &TypeCoercionError{
				Code: code, Field: spec.Name, Value: raw, Type: spec.Type, Line: line.Number,
			}
		}
		row.Fields = append(row.Fields, Field{Name: spec.Name, Value: v})
	}

	if len(values) > len(sch.Fields) {
		if d.strict {
			return Row{}, &FieldCountMismatchError{
				Code: code, Line: line.Number, Want: len(sch.Fields), Got: len(values),
			}
		}
		for j := len(sch.Fields); j < len(values); j++ {
			raw := strings.TrimSpace(values[j])
			v, _ := coerce(raw, schema.FieldText)
			row.Fields = append(row.Fields, Field{
				Name:  fmt.Sprintf("extra%d", j-len(sch.Fields)+1),
				Value: v,
			})
		}
	}

	return row, nil
}

// coerce parses a non-empty raw value as the given type. ok is false when
// the value cannot be parsed; empty raw always succeeds as an absent value.
func coerce(raw string, typ schema.FieldType) (Value, bool) {
	v := Value{Kind: typ, Raw: raw}
	if raw == "" {
		return v, true
	}
	switch typ {
	case schema.FieldInteger:
		v.Int = ToInt8(raw)
		return v, v.Int.Valid
	case schema.FieldNumeric:
		v.Num = ToNumeric(raw)
		return v, v.Num.Valid
	case schema.FieldDate:
		v.Date = ToDate(raw)
		return v, v.Date.Valid
	case schema.FieldBool:
		v.Bool = ToBool(raw)
		return v, v.Bool.Valid
	default:
		v.Text = ToText(raw)
		return v, true
	}
}

// trimQuotes strips one layer of surrounding double quotes, a vendor
// artifact of comma-era filings.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}
