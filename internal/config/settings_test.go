package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetOutputDirectory(customDir)

	if got := settings.GetOutputDirectory(); got != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, got)
	}
}

func TestOutputKind(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if kind := settings.GetOutputKind(); kind != DefaultOutputKind {
		t.Errorf("Expected default output kind %s, got %s", DefaultOutputKind, kind)
	}

	// Test setting custom value
	settings.SetOutputKind(model.OutputAudio)
	if kind := settings.GetOutputKind(); kind != model.OutputAudio {
		t.Errorf("Expected output kind %s, got %s", model.OutputAudio, kind)
	}
}

func TestOutputKindOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetOutputKindOptions()
	if len(options) != 2 {
		t.Fatalf("Expected 2 output kind options, got %d", len(options))
	}
	if options[0] != model.OutputVideo || options[1] != model.OutputAudio {
		t.Errorf("Unexpected output kind options: %v", options)
	}
}

func TestCookieFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Empty by default; cookies are optional
	if path := settings.GetCookieFile(); path != "" {
		t.Errorf("Expected empty cookie file by default, got %s", path)
	}

	settings.SetCookieFile("/home/u/cookies.txt")
	if path := settings.GetCookieFile(); path != "/home/u/cookies.txt" {
		t.Errorf("Expected cookie file /home/u/cookies.txt, got %s", path)
	}
}

func TestCookieBrowser(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetCookieBrowser("firefox")
	if browser := settings.GetCookieBrowser(); browser != "firefox" {
		t.Errorf("Expected cookie browser firefox, got %s", browser)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("es")
	if lang := settings.GetLanguage(); lang != "es" {
		t.Errorf("Expected language es, got %s", lang)
	}

	// Options include both shipped languages
	options := settings.GetLanguageOptions()
	if _, ok := options["en"]; !ok {
		t.Error("Language options should include en")
	}
	if _, ok := options["es"]; !ok {
		t.Error("Language options should include es")
	}
}
