package errors

import (
	"strings"
	"testing"
)

func TestValidateMapName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Network", false},
		{"valid with spaces", "Core network (DC1)", false},
		{"valid unicode", "Übersicht", false},
		{"exactly max", strings.Repeat("m", 128), false},

		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("m", 129), true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMapName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMapName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateMapName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateAPIPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"root", "/", false},
		{"default", "/zabbix/", false},
		{"nested", "/monitoring/zabbix/", false},

		{"empty", "", true},
		{"no leading slash", "zabbix/", true},
		{"no trailing slash", "/zabbix", true},
		{"traversal", "/zabbix/../", true},
		{"backslash", "/zab\\bix/", true},
		{"query", "/zabbix/?a=b/", true},
		{"control char", "/zab\x01bix/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAPIPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAPIPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColorCode(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"FF00FF", false},
		{"00ff00", false},
		{"#FF00FF", true},
		{"FFF", true},
		{"GG0000", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateColorCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColorCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColorCode(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidColor)
			}
		})
	}
}
