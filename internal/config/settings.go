package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/playdeck/playdeck/internal/media"
)

// Settings keys for Fyne preferences
const (
	KeyMediaCacheDir  = "media_cache_directory"
	KeyMaxParallel    = "max_parallel_media"
	KeyOverwriteMedia = "overwrite_media"
	KeyInstallDir     = "install_directory"
	KeyDarkTheme      = "dark_theme"
	KeyWindowWidth    = "window_width"
	KeyWindowHeight   = "window_height"
)

// Default values
const (
	DefaultMaxParallel    = media.NumWorkers
	MinParallel           = 1
	MaxParallel           = 16
	DefaultOverwriteMedia = false
	DefaultDarkTheme      = false
	DefaultWindowWidth    = 900
	DefaultWindowHeight   = 620
	MinWindowWidth        = 480
	MinWindowHeight       = 360
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMediaCacheDir returns the directory game icons and banners are
// cached under
func (s *Settings) GetMediaCacheDir() string {
	dir := s.app.Preferences().String(KeyMediaCacheDir)
	if dir == "" {
		defaultDir, err := defaultMediaCacheDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), "playdeck", "media")
		}
		s.SetMediaCacheDir(defaultDir)
		return defaultDir
	}
	return dir
}

// SetMediaCacheDir sets the media cache directory
func (s *Settings) SetMediaCacheDir(dir string) {
	s.app.Preferences().SetString(KeyMediaCacheDir, dir)
}

// GetMaxParallelMedia returns the maximum number of parallel media
// downloads
func (s *Settings) GetMaxParallelMedia() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelMedia(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelMedia sets the maximum number of parallel media downloads,
// clamped to a sane range
func (s *Settings) SetMaxParallelMedia(count int) {
	if count < MinParallel {
		count = MinParallel
	}
	if count > MaxParallel {
		count = MaxParallel
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetOverwriteMedia returns whether cached media is re-downloaded
func (s *Settings) GetOverwriteMedia() bool {
	return s.app.Preferences().BoolWithFallback(KeyOverwriteMedia, DefaultOverwriteMedia)
}

// SetOverwriteMedia sets whether cached media is re-downloaded
func (s *Settings) SetOverwriteMedia(overwrite bool) {
	s.app.Preferences().SetBool(KeyOverwriteMedia, overwrite)
}

// GetInstallDir returns the directory games are installed into
func (s *Settings) GetInstallDir() string {
	dir := s.app.Preferences().String(KeyInstallDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, "Games")
		s.SetInstallDir(dir)
	}
	return dir
}

// SetInstallDir sets the directory games are installed into
func (s *Settings) SetInstallDir(dir string) {
	s.app.Preferences().SetString(KeyInstallDir, dir)
}

// GetDarkTheme returns whether the dark theme variant is forced
func (s *Settings) GetDarkTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyDarkTheme, DefaultDarkTheme)
}

// SetDarkTheme sets whether the dark theme variant is forced
func (s *Settings) SetDarkTheme(dark bool) {
	s.app.Preferences().SetBool(KeyDarkTheme, dark)
}

// GetWindowSize returns the stored window geometry
func (s *Settings) GetWindowSize() (width, height int) {
	width = s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height = s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return width, height
}

// SetWindowSize stores the window geometry, clamped to a usable minimum
func (s *Settings) SetWindowSize(width, height int) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	s.app.Preferences().SetInt(KeyWindowWidth, width)
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}

// defaultMediaCacheDir places the media cache under the user cache
// directory
func defaultMediaCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "playdeck", "media"), nil
}
