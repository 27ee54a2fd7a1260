package schema

import (
	"fmt"
	"sort"
	"strings"
)

// TableEntry is one row of the schema fact base: a single field definition
// for a (format version, record type code) pair.
type TableEntry struct {
	Version  string
	Code     string
	Ordinal  int // 1-based position within the record
	Field    string
	Type     FieldType
	Required bool
}

// Registry maps (format version, record type code) to field schemas.
//
// A Registry is built once from a fact base and never mutated, so concurrent
// lookups need no locking. Use [Default] for the embedded process-wide table
// or [NewRegistry] to build one from custom entries (tests, alternate tables).
type Registry struct {
	// byCode maps an upper-cased record type code to its schemas,
	// sorted by ascending version.
	byCode map[string][]*versioned
}

type versioned struct {
	version Version
	schema  *Schema
}

// NewRegistry builds a registry from schema table entries.
// It fails on invalid versions or semantic types, and on duplicate ordinal
// positions for the same (version, code) key.
func NewRegistry(entries []TableEntry) (*Registry, error) {
	type key struct {
		version string
		code    string
	}
	fields := make(map[key]map[int]FieldSpec)
	versions := make(map[key]Version)

	for _, e := range entries {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		if code == "" {
			return nil, fmt.Errorf("schema table: empty record type code at version %q", e.Version)
		}
		ver, err := ParseVersion(e.Version)
		if err != nil {
			return nil, fmt.Errorf("schema table: %w", err)
		}
		if e.Ordinal < 1 {
			return nil, fmt.Errorf("schema table: %s/%s: ordinal %d out of range", e.Version, code, e.Ordinal)
		}

		k := key{version: e.Version, code: code}
		if fields[k] == nil {
			fields[k] = make(map[int]FieldSpec)
			versions[k] = ver
		}
		if _, dup := fields[k][e.Ordinal]; dup {
			return nil, fmt.Errorf("schema table: %s/%s: duplicate ordinal %d", e.Version, code, e.Ordinal)
		}
		fields[k][e.Ordinal] = FieldSpec{Name: e.Field, Type: e.Type, Required: e.Required}
	}

	r := &Registry{byCode: make(map[string][]*versioned)}
	for k, byOrdinal := range fields {
		specs := make([]FieldSpec, len(byOrdinal))
		for ord, spec := range byOrdinal {
			if ord > len(specs) {
				return nil, fmt.Errorf("schema table: %s/%s: ordinal %d leaves a gap", k.version, k.code, ord)
			}
			specs[ord-1] = spec
		}
		r.byCode[k.code] = append(r.byCode[k.code], &versioned{
			version: versions[k],
			schema:  &Schema{Code: k.code, Version: k.version, Fields: specs},
		})
	}

	for _, vs := range r.byCode {
		sort.Slice(vs, func(i, j int) bool {
			return vs[i].version.Compare(vs[j].version) < 0
		})
	}
	return r, nil
}

// Resolve returns the schema for a record type code under a format version.
//
// Code matching is exact first; failing that, the longest registered prefix
// of the code wins, which maps amendment variants (F3N, F3A, F3T) onto their
// base form and itemization codes (SA11AI, SB23) onto their schedule.
// Version matching is exact first, then the nearest lower registered version:
// filings routinely declare versions for which not every record type has a
// dedicated schema revision.
func (r *Registry) Resolve(version, code string) (*Schema, error) {
	ver, err := ParseVersion(version)
	if err != nil {
		return nil, err
	}

	lookup := strings.ToUpper(strings.TrimSpace(code))
	vs, ok := r.byCode[lookup]
	for !ok && len(lookup) > 1 {
		lookup = lookup[:len(lookup)-1]
		vs, ok = r.byCode[lookup]
	}
	if !ok {
		return nil, &UnknownRecordTypeError{Version: version, Code: code}
	}

	// vs is sorted ascending; take the highest version <= ver.
	var best *Schema
	for _, v := range vs {
		if v.version.Compare(ver) > 0 {
			break
		}
		best = v.schema
	}
	if best == nil {
		return nil, &UnknownRecordTypeError{Version: version, Code: code}
	}
	return best, nil
}

// Codes returns the registered record type codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.byCode))
	for c := range r.byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
