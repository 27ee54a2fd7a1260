package fec

// convert.go coerces raw field text into typed pgtype values.
//
// All To* functions return values with Valid=false for empty input, letting
// absent optional fields flow through as NULL-like values. Invalid non-empty
// input also yields Valid=false; the decoder turns that into a
// TypeCoercionError because it can distinguish empty from unparseable.

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex validates a numeric string after cleanup. Matches integers,
// decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// dateLayouts covers the formats seen across filing eras. Electronic
// filings use YYYYMMDD; older vendor software emitted slash and ISO forms.
var dateLayouts = []string{
	"20060102",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ToText converts a string to pgtype.Text.
// Returns invalid if the string is empty or only whitespace.
func ToText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToInt8 converts a string to pgtype.Int8.
func ToInt8(s string) pgtype.Int8 {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Int8{Valid: false}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: i, Valid: true}
}

// ToNumeric converts a string to pgtype.Numeric. Handles thousands
// separators, currency symbols, and accounting-style negatives "(123.45)"
// seen in hand-edited legacy filings.
func ToNumeric(s string) pgtype.Numeric {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Numeric{Valid: false}
	}

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// ToDate converts a string to pgtype.Date, trying each known layout.
func ToDate(s string) pgtype.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Date{Valid: false}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}
	return pgtype.Date{Valid: false}
}

// ToBool converts a string to pgtype.Bool. Besides the usual spellings,
// "X" counts as true: FEC forms use it as a checked-box marker.
func ToBool(s string) pgtype.Bool {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return pgtype.Bool{Valid: false}
	}
	switch s {
	case "true", "t", "yes", "y", "x", "1":
		return pgtype.Bool{Bool: true, Valid: true}
	case "false", "f", "no", "n", "0":
		return pgtype.Bool{Bool: false, Valid: true}
	default:
		return pgtype.Bool{Valid: false}
	}
}
