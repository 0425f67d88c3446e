// Package taralli provides Material-style UI widgets for graphical
// applications on embedded Linux devices, particularly handheld gaming
// consoles. It currently ships a tab bar with preferred/effective layout
// resolution and a floating action button, both themed through a shared
// semantic color scheme.
//
// The package handles SDL initialization, theming, and icon rasterization;
// widgets are rendered into the window created by Init.
package taralli

import (
	"log/slog"

	"github.com/nikit6000/taralli/pkg/taralli/constants"
	"github.com/nikit6000/taralli/pkg/taralli/internal"
)

// Options configures library initialization.
type Options struct {
	WindowTitle     string                 // Window title displayed in windowed mode
	ShowBackground  bool                   // Whether to render the theme background
	WindowOptions   internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	SchemeFile      string                 // Path to a TOML color scheme file; empty uses the Material baseline
	PrimaryColorHex uint32                 // Custom primary color, overrides the scheme file when non-zero
	FontPath        string                 // Path to the UI font
	FontSize        int32                  // Default title font size, 0 keeps the theme default
	LogPath         string                 // Full path for the log file including filename
}

// Init initializes the SDL subsystems, theming, and the window.
// Must be called before rendering any widgets.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	scheme := GetDefaultColorScheme()
	if options.SchemeFile != "" {
		loaded, err := LoadColorScheme(options.SchemeFile)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load color scheme; using baseline",
				"path", options.SchemeFile, "error", err)
		} else {
			scheme = loaded
		}
	}
	if options.PrimaryColorHex != 0 {
		scheme.PrimaryColor = internal.HexToColor(options.PrimaryColorHex)
	}
	SetDefaultColorScheme(scheme)

	theme := internal.GetTheme()
	theme.BarColor = scheme.SurfaceColor
	theme.IndicatorColor = scheme.PrimaryColor
	theme.BackgroundColor = scheme.BackgroundColor
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	if options.FontSize != 0 {
		theme.FontSize = options.FontSize
	}
	internal.SetTheme(theme)

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions)
}

// Close releases all SDL resources and shuts down the library.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
