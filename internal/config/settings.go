package config

import (
	"fyne.io/fyne/v2"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir     = "output_directory"
	KeyOutputKind    = "output_kind"
	KeyCookieFile    = "cookie_file"
	KeyCookieBrowser = "cookie_browser"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultOutputKind = model.OutputVideo
	DefaultLanguage   = "system"
	FallbackOutputDir = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured destination directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackOutputDir
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the destination directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetOutputKind returns the default output kind for new downloads
func (s *Settings) GetOutputKind() model.OutputKind {
	kind := s.app.Preferences().String(KeyOutputKind)
	if kind == "" {
		s.SetOutputKind(DefaultOutputKind)
		return DefaultOutputKind
	}
	return model.OutputKind(kind)
}

// SetOutputKind sets the default output kind
func (s *Settings) SetOutputKind(kind model.OutputKind) {
	s.app.Preferences().SetString(KeyOutputKind, string(kind))
}

// GetOutputKindOptions returns the selectable output kinds
func (s *Settings) GetOutputKindOptions() []model.OutputKind {
	return []model.OutputKind{model.OutputVideo, model.OutputAudio}
}

// GetCookieFile returns the last used cookie file path, if any
func (s *Settings) GetCookieFile() string {
	return s.app.Preferences().String(KeyCookieFile)
}

// SetCookieFile remembers the cookie file path for the next session
func (s *Settings) SetCookieFile(path string) {
	s.app.Preferences().SetString(KeyCookieFile, path)
}

// GetCookieBrowser returns the preferred browser for cookie imports
func (s *Settings) GetCookieBrowser() string {
	return s.app.Preferences().String(KeyCookieBrowser)
}

// SetCookieBrowser sets the preferred browser for cookie imports
func (s *Settings) SetCookieBrowser(browser string) {
	s.app.Preferences().SetString(KeyCookieBrowser, browser)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}
