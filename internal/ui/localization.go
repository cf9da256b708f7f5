package ui

import (
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/download"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDownload           = "download"
	KeyStop               = "stop"
	KeyOpenFolder         = "open_folder"
	KeyClearLog           = "clear_log"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyOutputDirectory    = "output_directory"
	KeyOutputFormat       = "output_format"
	KeyVideoMP4           = "video_mp4"
	KeyAudioMP3           = "audio_mp3"
	KeyCookiesFile        = "cookies_file"
	KeyCookieBrowser      = "cookie_browser"
	KeyImportCookies      = "import_cookies"
	KeyCookiesImported    = "cookies_imported"
	KeyCookiesImportError = "cookies_import_error"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyEnterURL           = "enter_url"
	KeyPlatform           = "platform"
	KeySupports           = "supports"
	KeySettingsSaved      = "settings_saved"
	KeyDownloadStarted    = "download_started"
	KeyDownloadCompleted  = "download_completed"
	KeyDownloadStopped    = "download_stopped"
	KeyDownloadBusy       = "download_busy"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyInvalidURL         = "invalid_url"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyUnsupportedURL     = "unsupported_url"
	KeyExtractionFailed   = "extraction_failed"
	KeyFilesystemFailed   = "filesystem_failed"
	KeyConversionFailed   = "conversion_failed"
	KeyFetching           = "fetching"
	KeyConverting         = "converting"
	KeyIdle               = "idle"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// KindText returns the display label for an output kind.
func (l *Localization) KindText(kind model.OutputKind) string {
	if kind == model.OutputAudio {
		return l.GetText(KeyAudioMP3)
	}
	return l.GetText(KeyVideoMP4)
}

// FailureText maps a failure classification label from the download
// service onto a localized message.
func (l *Localization) FailureText(failureKind string) string {
	switch download.FailureKind(failureKind) {
	case download.FailureUnsupportedURL:
		return l.GetText(KeyUnsupportedURL)
	case download.FailureFilesystem:
		return l.GetText(KeyFilesystemFailed)
	case download.FailureConversion:
		return l.GetText(KeyConversionFailed)
	default:
		return l.GetText(KeyExtractionFailed)
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Media Downloader",
		KeyDownload:           "Download",
		KeyStop:               "Stop",
		KeyOpenFolder:         "Open Folder",
		KeyClearLog:           "Clear Log",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyOutputDirectory:    "Output Directory",
		KeyOutputFormat:       "Output Format",
		KeyVideoMP4:           "Video (MP4)",
		KeyAudioMP3:           "Audio (MP3)",
		KeyCookiesFile:        "Cookies (optional, for private content)",
		KeyCookieBrowser:      "Cookie Browser",
		KeyImportCookies:      "From Browser",
		KeyCookiesImported:    "Cookies imported",
		KeyCookiesImportError: "Cookie import failed",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyEnterURL:           "Paste a YouTube, X/Twitter, Instagram or Audiomack URL",
		KeyPlatform:           "Platform",
		KeySupports:           "Supports",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyDownloadStarted:    "Download started",
		KeyDownloadCompleted:  "Download completed",
		KeyDownloadStopped:    "Download stopped",
		KeyDownloadBusy:       "A download is already in progress",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyInvalidURL:         "Invalid URL",
		KeyPleaseEnterURL:     "Please enter a URL",
		KeyUnsupportedURL:     "Unsupported URL — no platform matches",
		KeyExtractionFailed:   "Extraction failed",
		KeyFilesystemFailed:   "Cannot write to the output directory",
		KeyConversionFailed:   "Conversion failed — is FFmpeg installed?",
		KeyFetching:           "Fetching",
		KeyConverting:         "Converting",
		KeyIdle:               "Idle",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:           "Media Downloader",
		KeyDownload:           "Descargar",
		KeyStop:               "Parar",
		KeyOpenFolder:         "Abrir carpeta",
		KeyClearLog:           "Limpiar log",
		KeySettings:           "Configuración",
		KeyFile:               "Archivo",
		KeyLanguage:           "Idioma",
		KeyOutputDirectory:    "Carpeta de salida",
		KeyOutputFormat:       "Formato de salida",
		KeyVideoMP4:           "Vídeo (MP4)",
		KeyAudioMP3:           "Audio (MP3)",
		KeyCookiesFile:        "Cookies (opcional, para contenido privado)",
		KeyCookieBrowser:      "Navegador de cookies",
		KeyImportCookies:      "Desde navegador",
		KeyCookiesImported:    "Cookies importadas",
		KeyCookiesImportError: "Error al importar cookies",
		KeySave:               "Guardar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Examinar",
		KeyEnterURL:           "Pega una URL de YouTube, X/Twitter, Instagram o Audiomack",
		KeyPlatform:           "Plataforma",
		KeySupports:           "Soporta",
		KeySettingsSaved:      "¡Configuración guardada!",
		KeyDownloadStarted:    "Descarga iniciada",
		KeyDownloadCompleted:  "Descarga completa",
		KeyDownloadStopped:    "Descarga detenida",
		KeyDownloadBusy:       "Ya hay una descarga en curso",
		KeyErrorOpeningFolder: "Error al abrir la carpeta",
		KeyInvalidURL:         "URL inválida",
		KeyPleaseEnterURL:     "Introduce una URL de video",
		KeyUnsupportedURL:     "URL no soportada — ninguna plataforma coincide",
		KeyExtractionFailed:   "Error en la extracción",
		KeyFilesystemFailed:   "No se puede escribir en la carpeta de salida",
		KeyConversionFailed:   "Error de conversión — ¿está FFmpeg instalado?",
		KeyFetching:           "Descargando",
		KeyConverting:         "Convirtiendo",
		KeyIdle:               "Inactivo",
	}
}
