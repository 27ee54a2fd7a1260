package fec

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "LF terminated",
			input: "one\ntwo\nthree\n",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "CRLF terminated",
			input: "one\r\ntwo\r\n",
			want:  []string{"one", "two"},
		},
		{
			name:  "mixed terminators",
			input: "one\r\ntwo\nthree\r\n",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "final line without terminator",
			input: "one\ntwo",
			want:  []string{"one", "two"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "blank lines preserved",
			input: "one\n\ntwo\n",
			want:  []string{"one", "", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLineReader(strings.NewReader(tt.input), 0)
			var got []string
			for {
				line, err := lr.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				got = append(got, line.Text)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLineReaderNumbersAndOffsets(t *testing.T) {
	lr := NewLineReader(strings.NewReader("abc\ndefg\n"), 0)

	first, err := lr.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Number != 1 || first.Offset != 0 {
		t.Errorf("first line number/offset = %d/%d, want 1/0", first.Number, first.Offset)
	}

	second, err := lr.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Number != 2 {
		t.Errorf("second line number = %d, want 2", second.Number)
	}
	if second.Offset != 4 {
		t.Errorf("second line offset = %d, want 4", second.Offset)
	}
}

func TestLineReaderBoundedLine(t *testing.T) {
	// A line over the bound fails, but the reader resumes at the next line.
	input := strings.Repeat("x", 100) + "\nok\n"
	lr := NewLineReader(strings.NewReader(input), 10)

	_, err := lr.Next()
	var malformed *MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedLineError", err)
	}
	if malformed.Limit != 10 {
		t.Errorf("limit = %d, want 10", malformed.Limit)
	}

	line, err := lr.Next()
	if err != nil {
		t.Fatalf("unexpected error after malformed line: %v", err)
	}
	if line.Text != "ok" {
		t.Errorf("recovered line = %q, want %q", line.Text, "ok")
	}
	if line.Number != 2 {
		t.Errorf("recovered line number = %d, want 2", line.Number)
	}
}

func TestLineReaderEOFIsSticky(t *testing.T) {
	lr := NewLineReader(strings.NewReader("one\n"), 0)
	if _, err := lr.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := lr.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("call %d after exhaustion: error = %v, want io.EOF", i+1, err)
		}
	}
}
