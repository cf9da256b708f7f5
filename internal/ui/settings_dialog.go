package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/config"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/cookies"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry *widget.Entry
	kindSelect     *widget.Select
	browserSelect  *widget.Select
	languageSelect *widget.Select
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs
// after a confirmed save so the caller can refresh dependent widgets.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Output directory selection
	sd.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	// Default output kind
	kindOptions := []string{}
	for _, kind := range sd.settings.GetOutputKindOptions() {
		kindOptions = append(kindOptions, sd.localization.KindText(kind))
	}
	sd.kindSelect = widget.NewSelect(kindOptions, nil)

	// Browser used for cookie imports
	sd.browserSelect = widget.NewSelect(cookies.SupportedBrowsers(), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyOutputDirectory)),
		outputDirRow,

		widget.NewLabel(sd.localization.GetText(KeyOutputFormat)),
		sd.kindSelect,

		widget.NewLabel(sd.localization.GetText(KeyCookieBrowser)),
		sd.browserSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.kindSelect.SetSelected(sd.localization.KindText(sd.settings.GetOutputKind()))
	if browser := sd.settings.GetCookieBrowser(); browser != "" {
		sd.browserSelect.SetSelected(browser)
	}
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.outputDirEntry.Text; dir != "" {
		sd.settings.SetOutputDirectory(dir)
	}

	if sd.kindSelect.Selected == sd.localization.KindText(model.OutputAudio) {
		sd.settings.SetOutputKind(model.OutputAudio)
	} else {
		sd.settings.SetOutputKind(model.OutputVideo)
	}

	if sd.browserSelect.Selected != "" {
		sd.settings.SetCookieBrowser(sd.browserSelect.Selected)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
