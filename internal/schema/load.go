package schema

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// schemasCSV is the embedded schema fact base, one row per field:
// format_version,record_type_code,ordinal_position,field_name,semantic_type,required
//
//go:embed schemas.csv
var schemasCSV string

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry built from the embedded schema
// table. The table is parsed once; a malformed embedded table is a build
// defect and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		entries, err := ParseTable(strings.NewReader(schemasCSV))
		if err != nil {
			panic(fmt.Sprintf("embedded schema table: %v", err))
		}
		defaultRegistry, err = NewRegistry(entries)
		if err != nil {
			panic(fmt.Sprintf("embedded schema table: %v", err))
		}
	})
	return defaultRegistry
}

// ParseTable reads schema table entries from CSV. The first row must be the
// column header; column order is fixed.
func ParseTable(r io.Reader) ([]TableEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("schema table: reading header: %w", err)
	}
	if header[0] != "format_version" || header[1] != "record_type_code" {
		return nil, fmt.Errorf("schema table: unexpected header %v", header)
	}

	var entries []TableEntry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("schema table: %w", err)
		}

		ordinal, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("schema table: %s/%s: bad ordinal %q", rec[0], rec[1], rec[2])
		}
		typ, err := ParseFieldType(rec[4])
		if err != nil {
			return nil, fmt.Errorf("schema table: %s/%s/%s: %w", rec[0], rec[1], rec[3], err)
		}
		required, err := strconv.ParseBool(rec[5])
		if err != nil {
			return nil, fmt.Errorf("schema table: %s/%s/%s: bad required flag %q", rec[0], rec[1], rec[3], rec[5])
		}

		entries = append(entries, TableEntry{
			Version:  rec[0],
			Code:     rec[1],
			Ordinal:  ordinal,
			Field:    rec[3],
			Type:     typ,
			Required: required,
		})
	}
	return entries, nil
}
