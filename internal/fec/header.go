package fec

import (
	"strings"

	"fecstream/internal/schema"
)

// Header is the first record of a filing. It declares the format version
// that selects the delimiter era and schema revisions for everything after
// it, plus the provenance of the filing software.
type Header struct {
	FECVersion      string
	SoftwareName    string
	SoftwareVersion string
	ReportID        string // empty when absent
	ReportNumber    string // empty when absent; "0" on originals, N on amendments
}

// ParseHeader decodes an HDR line. The header line predates knowledge of
// the format version, so its delimiter is version-independent: the FS
// separator wins when present, otherwise comma. Version 6+ software writes
// an extra "FEC" marker after HDR, which is tolerated and skipped.
func ParseHeader(line Line) (*Header, error) {
	delim := ","
	if strings.ContainsRune(line.Text, rune(FieldSeparator)) {
		delim = string(FieldSeparator)
	}

	fields := strings.Split(line.Text, delim)
	for i := range fields {
		fields[i] = trimQuotes(fields[i])
	}

	if !strings.EqualFold(fields[0], "HDR") {
		return nil, &MalformedHeaderError{Line: line.Number, Reason: "first record is not HDR"}
	}

	rest := fields[1:]
	if len(rest) > 0 && strings.EqualFold(rest[0], "FEC") {
		rest = rest[1:]
	}
	if len(rest) < 2 || rest[0] == "" || rest[1] == "" {
		return nil, &MalformedHeaderError{Line: line.Number, Reason: "format version or software name missing"}
	}
	if _, err := schema.ParseVersion(rest[0]); err != nil {
		return nil, &MalformedHeaderError{Line: line.Number, Reason: err.Error()}
	}

	h := &Header{FECVersion: rest[0], SoftwareName: rest[1]}
	if len(rest) > 2 {
		h.SoftwareVersion = rest[2]
	}
	if len(rest) > 3 {
		h.ReportID = rest[3]
	}
	if len(rest) > 4 {
		h.ReportNumber = rest[4]
	}
	return h, nil
}
