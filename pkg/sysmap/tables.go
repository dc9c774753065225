package sysmap

import (
	"maps"
	"slices"
	"strings"

	zerr "github.com/matzehuels/zbxmap/pkg/errors"
)

// DefaultColorName is the color table key used for edges without a color.
const DefaultColorName = "default"

// builtinColors maps symbolic link colors to Zabbix RRGGBB codes.
var builtinColors = map[string]string{
	"purple":         "FF00FF",
	"green":          "00FF00",
	DefaultColorName: "00FF00",
}

// ColorTable maps symbolic color names to Zabbix link color codes.
type ColorTable struct {
	codes map[string]string
}

// NewColorTable returns the built-in table extended with extra entries.
// Extra entries may override built-ins, including "default". Codes are
// validated and upper-cased.
func NewColorTable(extra map[string]string) (ColorTable, error) {
	codes := maps.Clone(builtinColors)
	for name, code := range extra {
		if err := zerr.ValidateColorCode(code); err != nil {
			return ColorTable{}, zerr.Wrap(zerr.ErrCodeInvalidColor, err, "color %q", name)
		}
		codes[name] = strings.ToUpper(code)
	}
	return ColorTable{codes: codes}, nil
}

// DefaultColors returns the built-in table.
func DefaultColors() ColorTable {
	return ColorTable{codes: maps.Clone(builtinColors)}
}

// Lookup returns the code for name. Unknown names are an error.
func (t ColorTable) Lookup(name string) (string, error) {
	code, ok := t.codes[name]
	if !ok {
		return "", zerr.New(zerr.ErrCodeInvalidColor, "unknown color %q (known: %s)",
			name, strings.Join(t.Names(), ", "))
	}
	return code, nil
}

// Default returns the code for edges that carry no color.
func (t ColorTable) Default() string {
	return t.codes[DefaultColorName]
}

// Names returns the known color names, sorted.
func (t ColorTable) Names() []string {
	return slices.Sorted(maps.Keys(t.codes))
}

// IconTable maps Zabbix image names to image IDs. It is filled from the
// server's image catalog at the start of a run.
type IconTable map[string]string

// Lookup returns the image ID for name. Unknown names are an error.
func (t IconTable) Lookup(name string) (string, error) {
	id, ok := t[name]
	if !ok {
		return "", zerr.New(zerr.ErrCodeIconNotFound, "unknown icon %q", name)
	}
	return id, nil
}

// Default icon names, as shipped with a stock Zabbix installation.
const (
	DefaultHostIcon  = "Server_(96)"
	DefaultImageIcon = "Cloud_(96)"
)

// DefaultIcons names the icons used when a node does not pick one.
type DefaultIcons struct {
	Host  string `toml:"host" validate:"required"`
	Image string `toml:"image" validate:"required"`
}

// StockIcons returns the stock Zabbix default icons.
func StockIcons() DefaultIcons {
	return DefaultIcons{Host: DefaultHostIcon, Image: DefaultImageIcon}
}
