package taralli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// ColorScheme exposes the named semantic colors that widgets and themers
// consume. New widgets pick their defaults from the scheme; individual
// per-state overrides layer on top.
type ColorScheme struct {
	PrimaryColor      sdl.Color
	OnPrimaryColor    sdl.Color
	SecondaryColor    sdl.Color
	OnSecondaryColor  sdl.Color
	SurfaceColor      sdl.Color
	OnSurfaceColor    sdl.Color
	BackgroundColor   sdl.Color
	OnBackgroundColor sdl.Color
	ErrorColor        sdl.Color
}

// DefaultColorScheme returns the Material baseline color scheme.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		PrimaryColor:      hexColor(0x6200EE),
		OnPrimaryColor:    hexColor(0xFFFFFF),
		SecondaryColor:    hexColor(0x03DAC6),
		OnSecondaryColor:  hexColor(0x000000),
		SurfaceColor:      hexColor(0xFFFFFF),
		OnSurfaceColor:    hexColor(0x000000),
		BackgroundColor:   hexColor(0xFFFFFF),
		OnBackgroundColor: hexColor(0x000000),
		ErrorColor:        hexColor(0xB00020),
	}
}

var defaultScheme = DefaultColorScheme()

// SetDefaultColorScheme sets the scheme new widgets are created with.
// Call before constructing widgets; existing widgets are unaffected.
func SetDefaultColorScheme(scheme ColorScheme) {
	defaultScheme = scheme
}

// GetDefaultColorScheme returns the scheme new widgets are created with.
func GetDefaultColorScheme() ColorScheme {
	return defaultScheme
}

// schemeFile is the on-disk TOML shape. Empty fields keep the baseline value.
type schemeFile struct {
	Primary      string `toml:"primary"`
	OnPrimary    string `toml:"on_primary"`
	Secondary    string `toml:"secondary"`
	OnSecondary  string `toml:"on_secondary"`
	Surface      string `toml:"surface"`
	OnSurface    string `toml:"on_surface"`
	Background   string `toml:"background"`
	OnBackground string `toml:"on_background"`
	Error        string `toml:"error"`
}

// LoadColorScheme reads a color scheme from a TOML file. Colors are hex
// strings ("#RRGGBB" or "RRGGBB"); keys left out keep the Material baseline
// value.
func LoadColorScheme(path string) (ColorScheme, error) {
	var file schemeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return DefaultColorScheme(), NewInfrastructureError("load_scheme", err)
	}

	scheme := DefaultColorScheme()
	fields := []struct {
		raw string
		dst *sdl.Color
	}{
		{file.Primary, &scheme.PrimaryColor},
		{file.OnPrimary, &scheme.OnPrimaryColor},
		{file.Secondary, &scheme.SecondaryColor},
		{file.OnSecondary, &scheme.OnSecondaryColor},
		{file.Surface, &scheme.SurfaceColor},
		{file.OnSurface, &scheme.OnSurfaceColor},
		{file.Background, &scheme.BackgroundColor},
		{file.OnBackground, &scheme.OnBackgroundColor},
		{file.Error, &scheme.ErrorColor},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		c, err := ParseHexColor(f.raw)
		if err != nil {
			return DefaultColorScheme(), NewInfrastructureError("load_scheme", err)
		}
		*f.dst = c
	}
	return scheme, nil
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque sdl.Color.
func ParseHexColor(s string) (sdl.Color, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 {
		return sdl.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var v uint32
	if _, err := fmt.Sscanf(raw, "%06x", &v); err != nil {
		return sdl.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return hexColor(v), nil
}

func hexColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
