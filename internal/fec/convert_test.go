package fec

import (
	"testing"
	"time"
)

func TestToText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantValid bool
	}{
		{"plain text", "John Smith", "John Smith", true},
		{"trims whitespace", "  padded  ", "padded", true},
		{"empty", "", "", false},
		{"only whitespace", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToText(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Valid && got.String != tt.want {
				t.Errorf("got %q, want %q", got.String, tt.want)
			}
		})
	}
}

func TestToInt8(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int64
		wantValid bool
	}{
		{"positive", "42", 42, true},
		{"negative", "-7", -7, true},
		{"zero", "0", 0, true},
		{"padded", " 199199 ", 199199, true},
		{"empty", "", 0, false},
		{"not a number", "abc", 0, false},
		{"decimal rejected", "1.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToInt8(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Valid && got.Int64 != tt.want {
				t.Errorf("got %d, want %d", got.Int64, tt.want)
			}
		})
	}
}

func TestToNumeric(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"integer", "250", true},
		{"decimal", "1250.50", true},
		{"negative", "-35.00", true},
		{"currency symbol", "$1,000.00", true},
		{"accounting negative", "(123.45)", true},
		{"thousands separators", "1,234,567.89", true},
		{"empty", "", false},
		{"garbage", "12abc", false},
		{"lone dollar", "$", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNumeric(tt.input)
			if got.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", got.Valid, tt.wantValid)
			}
		})
	}
}

func TestToNumericAccountingSign(t *testing.T) {
	got := ToNumeric("(123.45)")
	if !got.Valid {
		t.Fatal("expected valid numeric")
	}
	f, err := got.Float64Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Float64 != -123.45 {
		t.Errorf("got %v, want -123.45", f.Float64)
	}
}

func TestToDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      time.Time
		wantValid bool
	}{
		{"compact", "20240315", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"iso", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"slashes", "03/15/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"short slashes", "3/5/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "not-a-date", time.Time{}, false},
		{"month out of range", "20241315", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDate(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Valid && !got.Time.Equal(tt.want) {
				t.Errorf("got %v, want %v", got.Time, tt.want)
			}
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      bool
		wantValid bool
	}{
		{"true", "true", true, true},
		{"yes", "Y", true, true},
		{"checked box", "X", true, true},
		{"one", "1", true, true},
		{"false", "false", false, true},
		{"no", "n", false, true},
		{"zero", "0", false, true},
		{"empty", "", false, false},
		{"garbage", "maybe", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToBool(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Valid && got.Bool != tt.want {
				t.Errorf("got %v, want %v", got.Bool, tt.want)
			}
		})
	}
}
