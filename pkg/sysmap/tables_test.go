package sysmap

import (
	"slices"
	"testing"

	zerr "github.com/matzehuels/zbxmap/pkg/errors"
)

func TestDefaultColors(t *testing.T) {
	c := DefaultColors()

	tests := []struct {
		name string
		want string
	}{
		{"purple", "FF00FF"},
		{"green", "00FF00"},
		{"default", "00FF00"},
	}
	for _, tt := range tests {
		got, err := c.Lookup(tt.name)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	if c.Default() != "00FF00" {
		t.Errorf("Default() = %q, want 00FF00", c.Default())
	}
}

func TestColorLookupUnknown(t *testing.T) {
	_, err := DefaultColors().Lookup("mauve")
	if !zerr.Is(err, zerr.ErrCodeInvalidColor) {
		t.Errorf("Lookup(mauve) = %v, want INVALID_COLOR", err)
	}
}

func TestNewColorTable(t *testing.T) {
	c, err := NewColorTable(map[string]string{"red": "ff0000", "default": "0000FF"})
	if err != nil {
		t.Fatalf("NewColorTable() error: %v", err)
	}

	if got, _ := c.Lookup("red"); got != "FF0000" {
		t.Errorf("Lookup(red) = %q, want FF0000", got)
	}
	if got := c.Default(); got != "0000FF" {
		t.Errorf("Default() = %q, want 0000FF", got)
	}
	if got, _ := c.Lookup("purple"); got != "FF00FF" {
		t.Errorf("built-in purple = %q, want FF00FF", got)
	}
	if !slices.Equal(c.Names(), []string{"default", "green", "purple", "red"}) {
		t.Errorf("Names() = %v", c.Names())
	}

	// The built-in table is not modified.
	if got := DefaultColors().Default(); got != "00FF00" {
		t.Errorf("built-in default changed to %q", got)
	}
}

func TestNewColorTableInvalidCode(t *testing.T) {
	_, err := NewColorTable(map[string]string{"red": "#FF0000"})
	if !zerr.Is(err, zerr.ErrCodeInvalidColor) {
		t.Errorf("NewColorTable() = %v, want INVALID_COLOR", err)
	}
}

func TestIconLookup(t *testing.T) {
	icons := IconTable{"Server_(96)": "130", "Cloud_(96)": "26"}

	if id, err := icons.Lookup("Server_(96)"); err != nil || id != "130" {
		t.Errorf("Lookup(Server_(96)) = %q, %v; want 130, nil", id, err)
	}
	if _, err := icons.Lookup("router"); !zerr.Is(err, zerr.ErrCodeIconNotFound) {
		t.Errorf("Lookup(router) = %v, want ICON_NOT_FOUND", err)
	}
}

func TestElementTypeString(t *testing.T) {
	if ElementTypeHost.String() != "host" {
		t.Errorf("ElementTypeHost = %q", ElementTypeHost.String())
	}
	if ElementTypeImage.String() != "image" {
		t.Errorf("ElementTypeImage = %q", ElementTypeImage.String())
	}
	if ElementType(42).String() != "unknown" {
		t.Errorf("ElementType(42) = %q", ElementType(42).String())
	}
}
