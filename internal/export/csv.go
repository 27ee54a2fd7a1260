// Package export materializes decoded batches into output files. It is a
// batch consumer: it pulls what the decode engine emits and knows nothing
// about filings beyond the Batch contract.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fecstream/internal/fec"
)

// MultiFileWriter writes batches to one CSV file per record type code in a
// single output directory: SA rows land in SA.csv, F3 rows in F3.csv, and
// so on. The header row of each file lists the field names of the first row
// seen for that code; later rows are matched to it by name, so occasional
// extra fields on ragged lines are dropped rather than shifting columns.
type MultiFileWriter struct {
	dir   string
	files map[string]*codeFile
}

type codeFile struct {
	f      *os.File
	w      *csv.Writer
	header []string
}

// NewMultiFileWriter creates a writer rooted at dir, creating it if needed.
func NewMultiFileWriter(dir string) (*MultiFileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &MultiFileWriter{dir: dir, files: make(map[string]*codeFile)}, nil
}

// WriteBatch appends a batch's rows to the file for its record type code.
func (m *MultiFileWriter) WriteBatch(b *fec.Batch) error {
	cf, ok := m.files[b.Code]
	if !ok {
		if len(b.Rows) == 0 {
			return nil
		}
		var err error
		cf, err = m.open(b.Code, b.Rows[0])
		if err != nil {
			return err
		}
		m.files[b.Code] = cf
	}

	record := make([]string, len(cf.header))
	for _, row := range b.Rows {
		for i, name := range cf.header {
			record[i] = ""
			if v, ok := row.Get(name); ok {
				record[i] = v.Raw
			}
		}
		if err := cf.w.Write(record); err != nil {
			return fmt.Errorf("writing %s row: %w", b.Code, err)
		}
	}
	return nil
}

// Flush pushes buffered rows of every open file to disk.
func (m *MultiFileWriter) Flush() error {
	for code, cf := range m.files {
		cf.w.Flush()
		if err := cf.w.Error(); err != nil {
			return fmt.Errorf("flushing %s: %w", code, err)
		}
	}
	return nil
}

// Close flushes and closes all files. The first error wins, but every file
// is closed regardless.
func (m *MultiFileWriter) Close() error {
	var first error
	for code, cf := range m.files {
		cf.w.Flush()
		if err := cf.w.Error(); err != nil && first == nil {
			first = fmt.Errorf("flushing %s: %w", code, err)
		}
		if err := cf.f.Close(); err != nil && first == nil {
			first = fmt.Errorf("closing %s: %w", code, err)
		}
	}
	m.files = make(map[string]*codeFile)
	return first
}

func (m *MultiFileWriter) open(code string, first fec.Row) (*codeFile, error) {
	name := safeFileName(code) + ".csv"
	f, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}

	header := make([]string, len(first.Fields))
	for i, fld := range first.Fields {
		header[i] = fld.Name
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing %s header: %w", name, err)
	}
	return &codeFile{f: f, w: w, header: header}, nil
}

// safeFileName keeps record codes from escaping the output directory.
// Codes are alphanumeric in practice; anything else is replaced.
func safeFileName(code string) string {
	code = filepath.Base(code)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, code)
}
