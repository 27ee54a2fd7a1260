package fec

import "fecstream/internal/schema"

// Cover is the second record of a filing: the cover page of the form being
// filed. FormType keeps the code as filed (amendment suffix included, so
// "F3N" stays "F3N" even though it decodes against the F3 schema).
type Cover struct {
	FormType         string
	FilerCommitteeID string
	Row              Row
}

// ParseCover decodes the cover line using a schema resolved from the
// header's format version. Any resolution or decode failure is wrapped in
// MalformedCoverError; a filing without a readable cover is unusable.
func ParseCover(line Line, version string, reg *schema.Registry, strict bool) (*Cover, error) {
	d := NewDecoder(version, strict)

	sch, err := reg.Resolve(version, d.Code(line.Text))
	if err != nil {
		return nil, &MalformedCoverError{Line: line.Number, Err: err}
	}

	row, err := d.Decode(line, sch)
	if err != nil {
		return nil, &MalformedCoverError{Line: line.Number, Err: err}
	}

	cover := &Cover{FormType: row.Code, Row: row}
	if v, ok := row.Get("filer_committee_id_number"); ok {
		cover.FilerCommitteeID = v.Raw
	}
	return cover, nil
}
