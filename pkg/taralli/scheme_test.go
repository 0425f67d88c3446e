package taralli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	t.Run("accepts both prefixed and bare forms", func(t *testing.T) {
		t.Parallel()
		want := sdl.Color{R: 0x62, G: 0x00, B: 0xEE, A: 255}

		got, err := ParseHexColor("#6200EE")
		require.NoError(t, err)
		require.Equal(t, want, got)

		got, err = ParseHexColor("6200ee")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "#FFF", "#GGGGGG", "red"} {
			_, err := ParseHexColor(raw)
			require.Error(t, err, "input %q", raw)
		}
	})
}

func TestLoadColorScheme(t *testing.T) {
	t.Parallel()

	t.Run("overrides listed keys and keeps baseline for the rest", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "scheme.toml")
		require.NoError(t, os.WriteFile(path, []byte(
			"primary = \"#FF0000\"\non_surface = \"123456\"\n"), 0o644))

		scheme, err := LoadColorScheme(path)
		require.NoError(t, err)
		require.Equal(t, sdl.Color{R: 255, A: 255}, scheme.PrimaryColor)
		require.Equal(t, sdl.Color{R: 0x12, G: 0x34, B: 0x56, A: 255}, scheme.OnSurfaceColor)
		require.Equal(t, DefaultColorScheme().SurfaceColor, scheme.SurfaceColor)
	})

	t.Run("reports missing files as infrastructure errors", func(t *testing.T) {
		t.Parallel()
		_, err := LoadColorScheme(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
		require.True(t, IsInfrastructureError(err))
	})

	t.Run("reports bad colors as infrastructure errors", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "scheme.toml")
		require.NoError(t, os.WriteFile(path, []byte("primary = \"chartreuse\"\n"), 0o644))

		_, err := LoadColorScheme(path)
		require.Error(t, err)
		require.True(t, IsInfrastructureError(err))
	})
}
