package fec

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantVersion string
		wantSW      string
		wantSWVer   string
		wantRptNum  string
	}{
		{
			name:        "modern FS delimited with FEC marker",
			text:        "HDR\x1cFEC\x1c8.3\x1cNGP\x1c8.2.1",
			wantVersion: "8.3",
			wantSW:      "NGP",
			wantSWVer:   "8.2.1",
		},
		{
			name:        "comma delimited with report number",
			text:        "HDR,8.1,NetFile,199199,,0",
			wantVersion: "8.1",
			wantSW:      "NetFile",
			wantSWVer:   "199199",
			wantRptNum:  "0",
		},
		{
			name:        "legacy comma era",
			text:        "HDR,5.00,Vendor Software,1.0",
			wantVersion: "5.00",
			wantSW:      "Vendor Software",
			wantSWVer:   "1.0",
		},
		{
			name:        "quoted legacy fields",
			text:        `"HDR","3","DOSFec","2.02"`,
			wantVersion: "3",
			wantSW:      "DOSFec",
			wantSWVer:   "2.02",
		},
		{
			name:        "lowercase hdr accepted",
			text:        "hdr\x1cFEC\x1c8.0\x1cVendor\x1c1.0",
			wantVersion: "8.0",
			wantSW:      "Vendor",
			wantSWVer:   "1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHeader(Line{Text: tt.text, Number: 1})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h.FECVersion != tt.wantVersion {
				t.Errorf("FECVersion = %q, want %q", h.FECVersion, tt.wantVersion)
			}
			if h.SoftwareName != tt.wantSW {
				t.Errorf("SoftwareName = %q, want %q", h.SoftwareName, tt.wantSW)
			}
			if h.SoftwareVersion != tt.wantSWVer {
				t.Errorf("SoftwareVersion = %q, want %q", h.SoftwareVersion, tt.wantSWVer)
			}
			if h.ReportNumber != tt.wantRptNum {
				t.Errorf("ReportNumber = %q, want %q", h.ReportNumber, tt.wantRptNum)
			}
		})
	}
}

func TestParseHeaderMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not an HDR record", "F3XN\x1cC00479188"},
		{"missing software name", "HDR,8.1"},
		{"empty version", "HDR,,NetFile"},
		{"unparseable version", "HDR,vNext,NetFile"},
		{"empty line", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(Line{Text: tt.text, Number: 1})
			var malformed *MalformedHeaderError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %v, want MalformedHeaderError", err)
			}
			if malformed.Line != 1 {
				t.Errorf("error line = %d, want 1", malformed.Line)
			}
		})
	}
}
