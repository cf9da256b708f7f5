package ui

import (
	"testing"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/download"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

func TestLocalizationDefaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyDownload); got != "Download" {
		t.Errorf("Expected Download, got %s", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("es")
	if got := l.GetText(KeyDownload); got != "Descargar" {
		t.Errorf("Expected Descargar, got %s", got)
	}

	// Unknown language keeps the current one
	l.SetLanguage("fr")
	if l.GetCurrentLanguage() != "es" {
		t.Errorf("Expected language to stay es, got %s", l.GetCurrentLanguage())
	}

	// "system" falls back to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationUnknownKey(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself as fallback, got %s", got)
	}
}

func TestKindText(t *testing.T) {
	l := NewLocalization()

	if got := l.KindText(model.OutputVideo); got != "Video (MP4)" {
		t.Errorf("Expected Video (MP4), got %s", got)
	}
	if got := l.KindText(model.OutputAudio); got != "Audio (MP3)" {
		t.Errorf("Expected Audio (MP3), got %s", got)
	}
}

func TestFailureText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name string
		kind download.FailureKind
		key  string
	}{
		{"unsupported", download.FailureUnsupportedURL, KeyUnsupportedURL},
		{"filesystem", download.FailureFilesystem, KeyFilesystemFailed},
		{"conversion", download.FailureConversion, KeyConversionFailed},
		{"extraction", download.FailureExtraction, KeyExtractionFailed},
		{"unknown defaults to extraction", download.FailureKind("bogus"), KeyExtractionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.FailureText(string(tt.kind)); got != l.GetText(tt.key) {
				t.Errorf("FailureText(%s) = %s, want %s", tt.kind, got, l.GetText(tt.key))
			}
		})
	}
}

func TestAllKeysPresentInAllLanguages(t *testing.T) {
	l := NewLocalization()

	english := l.texts["en"]
	for lang, texts := range l.texts {
		if len(texts) != len(english) {
			t.Errorf("Language %s has %d keys, English has %d", lang, len(texts), len(english))
		}
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
