package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"fecstream/internal/fec"
	"fecstream/internal/schema"
)

func textValue(raw string) fec.Value {
	return fec.Value{Kind: schema.FieldText, Raw: raw, Text: fec.ToText(raw)}
}

func row(code string, pairs ...string) fec.Row {
	r := fec.Row{Code: code}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Fields = append(r.Fields, fec.Field{Name: pairs[i], Value: textValue(pairs[i+1])})
	}
	return r
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return records
}

func TestMultiFileWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewMultiFileWriter(dir)
	if err != nil {
		t.Fatalf("NewMultiFileWriter: %v", err)
	}

	batches := []*fec.Batch{
		{Code: "SA", Rows: []fec.Row{
			row("SA", "form_type", "SA11AI", "contributor_last_name", "Smith"),
			row("SA", "form_type", "SA11AI", "contributor_last_name", "Jones"),
		}},
		{Code: "SB", Rows: []fec.Row{
			row("SB", "form_type", "SB23", "payee_last_name", "Acme"),
		}},
		{Code: "SA", Rows: []fec.Row{
			row("SA", "form_type", "SA11AI", "contributor_last_name", "Lee"),
		}},
	}
	for _, b := range batches {
		if err := w.WriteBatch(b); err != nil {
			t.Fatalf("WriteBatch(%s): %v", b.Code, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	sa := readCSV(t, filepath.Join(dir, "SA.csv"))
	wantSA := [][]string{
		{"form_type", "contributor_last_name"},
		{"SA11AI", "Smith"},
		{"SA11AI", "Jones"},
		{"SA11AI", "Lee"},
	}
	if len(sa) != len(wantSA) {
		t.Fatalf("SA.csv has %d records, want %d", len(sa), len(wantSA))
	}
	for i := range sa {
		for j := range wantSA[i] {
			if sa[i][j] != wantSA[i][j] {
				t.Errorf("SA.csv[%d][%d] = %q, want %q", i, j, sa[i][j], wantSA[i][j])
			}
		}
	}

	sb := readCSV(t, filepath.Join(dir, "SB.csv"))
	if len(sb) != 2 {
		t.Fatalf("SB.csv has %d records, want 2", len(sb))
	}
	if sb[1][1] != "Acme" {
		t.Errorf("SB row payee = %q, want Acme", sb[1][1])
	}
}

func TestMultiFileWriterSkipsEmptyBatch(t *testing.T) {
	dir := t.TempDir()
	w, err := NewMultiFileWriter(dir)
	if err != nil {
		t.Fatalf("NewMultiFileWriter: %v", err)
	}
	if err := w.WriteBatch(&fec.Batch{Code: "SA"}); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "SA.csv")); !os.IsNotExist(err) {
		t.Error("empty batch should not create a file")
	}
}

func TestMultiFileWriterRaggedRows(t *testing.T) {
	// A later row with fields the header never saw drops them rather than
	// shifting columns.
	dir := t.TempDir()
	w, err := NewMultiFileWriter(dir)
	if err != nil {
		t.Fatalf("NewMultiFileWriter: %v", err)
	}
	b := &fec.Batch{Code: "TEXT", Rows: []fec.Row{
		row("TEXT", "form_type", "TEXT", "text4000", "memo one"),
		row("TEXT", "form_type", "TEXT", "text4000", "memo two", "extra1", "stray"),
	}}
	if err := w.WriteBatch(b); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	records := readCSV(t, filepath.Join(dir, "TEXT.csv"))
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if len(records[2]) != 2 {
		t.Errorf("ragged row rendered %d columns, want 2", len(records[2]))
	}
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SA11AI", "SA11AI"},
		{"F3X", "F3X"},
		{"../evil", "evil"},
		{"a b", "a_b"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := safeFileName(tt.input); got != tt.want {
				t.Errorf("safeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
