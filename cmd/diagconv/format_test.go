package main

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want format
	}{
		{"ecu.odx", formatODX},
		{"archive.pdx", formatPDX},
		{"desc.yaml", formatYAML},
		{"desc.yml", formatYAML},
		{"desc.mdd", formatMDD},
		{"ECU.ODX", formatODX},
		{"notes.txt", formatUnknown},
		{"noext", formatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := detectFormat(tt.path); got != tt.want {
				t.Errorf("detectFormat(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    format
		wantErr bool
	}{
		{"odx", formatODX, false},
		{"YAML", formatYAML, false},
		{"yml", formatYAML, false},
		{"mdd", formatMDD, false},
		{"pdx", formatUnknown, true},
		{"bogus", formatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOutputFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseOutputFormat(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOutputFormat(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseOutputFormat(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatExt(t *testing.T) {
	tests := []struct {
		f    format
		want string
	}{
		{formatODX, ".odx"},
		{formatYAML, ".yaml"},
		{formatMDD, ".mdd"},
		{formatPDX, ""},
		{formatUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if got := tt.f.ext(); got != tt.want {
				t.Errorf("%s.ext() = %q, want %q", tt.f, got, tt.want)
			}
		})
	}
}
