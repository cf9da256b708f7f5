package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/config"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/cookies"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/download"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/platform"
)

// RootUI represents the main window: URL input with a live platform
// indicator, output options, the download controls and the history/log
// panels underneath.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	downloadSvc download.Downloader
	registry    *download.Registry

	// Input widgets
	urlEntry      *widget.Entry
	platformLabel *widget.Label
	kindRadio     *widget.RadioGroup
	outputEntry   *widget.Entry
	cookieEntry   *widget.Entry

	// Action widgets
	downloadBtn   *widget.Button
	stopBtn       *widget.Button
	openFolderBtn *widget.Button

	// Progress widgets
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	// History and log
	historyList *widget.List
	tasks       []*model.DownloadTask
	logLabel    *widget.Label
	logLines    []string

	// Active task being tracked by the progress panel
	activeTaskID string

	// UI update debouncing for high-frequency progress callbacks
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI.
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, registry *download.Registry) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		downloadSvc:  downloadSvc,
		registry:     registry,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL entry with live platform detection
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnChanged = ui.onURLChanged
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.platformLabel = widget.NewLabel("")
	ui.updatePlatformIndicator("")

	// Output kind selection
	ui.kindRadio = widget.NewRadioGroup(ui.kindOptions(), nil)
	ui.kindRadio.Horizontal = true
	ui.kindRadio.SetSelected(ui.localization.KindText(ui.settings.GetOutputKind()))

	// Output directory row
	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetText(ui.settings.GetOutputDirectory())
	browseDirBtn := widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseDirectory)
	outputRow := container.NewBorder(nil, nil, nil, browseDirBtn, ui.outputEntry)

	// Cookie row: optional file path, file browse, and browser import
	ui.cookieEntry = widget.NewEntry()
	ui.cookieEntry.SetPlaceHolder(ui.localization.GetText(KeyCookiesFile))
	ui.cookieEntry.SetText(ui.settings.GetCookieFile())
	browseCookieBtn := widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseCookieFile)
	importCookieBtn := widget.NewButton(ui.localization.GetText(KeyImportCookies), ui.onImportCookies)
	cookieRow := container.NewBorder(nil, nil, nil, container.NewHBox(browseCookieBtn, importCookieBtn), ui.cookieEntry)

	// Action buttons
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()
	ui.openFolderBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	actionsRow := container.NewHBox(ui.downloadBtn, ui.stopBtn, ui.openFolderBtn, settingsBtn)

	// Progress panel
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyIdle))

	topPanel := container.NewVBox(
		ui.urlEntry,
		ui.platformLabel,
		ui.kindRadio,
		widget.NewLabel(ui.localization.GetText(KeyOutputDirectory)),
		outputRow,
		cookieRow,
		actionsRow,
		ui.progressBar,
		ui.statusLabel,
	)

	// History list
	ui.historyList = widget.NewList(
		func() int { return len(ui.tasks) },
		func() fyne.CanvasObject { return NewHistoryRow(nil, ui.localization) },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)

	// Log panel
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	clearLogBtn := widget.NewButton(ui.localization.GetText(KeyClearLog), ui.onClearLog)
	logPanel := container.NewBorder(clearLogBtn, nil, nil, nil, container.NewVScroll(ui.logLabel))

	bottomSplit := container.NewVSplit(ui.historyList, logPanel)
	bottomSplit.SetOffset(0.6)

	content := container.NewBorder(topPanel, nil, nil, nil, bottomSplit)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// kindOptions returns the localized output kind labels in settings order.
func (ui *RootUI) kindOptions() []string {
	options := []string{}
	for _, kind := range ui.settings.GetOutputKindOptions() {
		options = append(options, ui.localization.KindText(kind))
	}
	return options
}

// selectedKind maps the radio selection back to an output kind.
func (ui *RootUI) selectedKind() model.OutputKind {
	if ui.kindRadio.Selected == ui.localization.KindText(model.OutputAudio) {
		return model.OutputAudio
	}
	return model.OutputVideo
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	selected := ui.selectedKind()

	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts(selected)
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts(selectedKind model.OutputKind) {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.cookieEntry.SetPlaceHolder(ui.localization.GetText(KeyCookiesFile))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.stopBtn.SetText(ui.localization.GetText(KeyStop))
	ui.openFolderBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyOpenFolder))

	ui.kindRadio.Options = ui.kindOptions()
	ui.kindRadio.SetSelected(ui.localization.KindText(selectedKind))
	ui.kindRadio.Refresh()

	ui.updatePlatformIndicator(ui.urlEntry.Text)
	ui.historyList.Refresh()
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// onURLChanged keeps the platform indicator in sync with the URL field.
func (ui *RootUI) onURLChanged(text string) {
	ui.updatePlatformIndicator(text)
}

// updatePlatformIndicator shows the matched platform for the URL, or the
// full list of supported platforms when nothing matches yet.
func (ui *RootUI) updatePlatformIndicator(rawURL string) {
	name := ""
	if strings.TrimSpace(rawURL) != "" {
		name = ui.registry.DetectName(strings.TrimSpace(rawURL))
	}

	if name != "" {
		ui.platformLabel.SetText(ui.localization.GetText(KeyPlatform) + ": " + name)
		ui.platformLabel.Importance = widget.SuccessImportance
	} else {
		ui.platformLabel.SetText(ui.localization.GetText(KeySupports) + ": " +
			strings.Join(ui.registry.PlatformNames(), MiddleDotSeparator))
		ui.platformLabel.Importance = widget.MediumImportance
	}
	ui.platformLabel.Refresh()
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.appendLog(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	if err := ui.validateURL(urlText); err != nil {
		ui.appendLog(ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
		return
	}

	outputDir := strings.TrimSpace(ui.outputEntry.Text)
	if outputDir == "" {
		outputDir = ui.settings.GetOutputDirectory()
	}
	ui.settings.SetOutputDirectory(outputDir)

	cookieFile := strings.TrimSpace(ui.cookieEntry.Text)
	ui.settings.SetCookieFile(cookieFile)

	kind := ui.selectedKind()
	ui.settings.SetOutputKind(kind)

	req := model.DownloadRequest{
		URL:        urlText,
		Kind:       kind,
		OutputDir:  outputDir,
		CookieFile: cookieFile,
	}

	task, err := ui.downloadSvc.Start(req)
	if err != nil {
		log.Printf("Start failed for %s: %v", urlText, err)
		ui.appendLog(ui.startErrorMessage(err))
		ui.refreshHistory()
		return
	}

	ui.activeTaskID = task.ID
	ui.setBusy(true)
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyFetching))
	ui.appendLog(ui.localization.GetText(KeyDownloadStarted) + ": " + urlText +
		MiddleDotSeparator + task.Platform + MiddleDotSeparator + ui.localization.KindText(kind))
	ui.refreshHistory()
}

// startErrorMessage maps a Start error to a localized message.
func (ui *RootUI) startErrorMessage(err error) string {
	if dlErr, ok := err.(*download.Error); ok {
		if dlErr.Kind == download.FailureUnsupportedURL {
			return ui.localization.FailureText(string(dlErr.Kind)) +
				" (" + ui.localization.GetText(KeySupports) + ": " +
				strings.Join(ui.registry.PlatformNames(), ", ") + ")"
		}
		return ui.localization.FailureText(string(dlErr.Kind)) + ": " + err.Error()
	}
	if ui.downloadSvc.Busy() {
		return ui.localization.GetText(KeyDownloadBusy)
	}
	return err.Error()
}

// onStopClick cancels the active download.
func (ui *RootUI) onStopClick() {
	if ui.activeTaskID == "" {
		return
	}
	task, ok := ui.downloadSvc.GetTask(ui.activeTaskID)
	if !ok || !task.Status.IsActive() {
		return
	}
	if err := ui.downloadSvc.Stop(task.ID); err != nil {
		log.Printf("Stop failed for %s: %v", task.ID, err)
	}
}

// onOpenFolder opens the output directory in the system file manager.
func (ui *RootUI) onOpenFolder() {
	dir := strings.TrimSpace(ui.outputEntry.Text)
	if dir == "" {
		dir = ui.settings.GetOutputDirectory()
	}
	if err := platform.OpenFolder(dir); err != nil {
		log.Printf("Error opening folder %s: %v", dir, err)
		ui.appendLog(ui.localization.GetText(KeyErrorOpeningFolder) + ": " + err.Error())
	}
}

// onRevealTaskFolder opens the folder containing a finished download.
func (ui *RootUI) onRevealTaskFolder(dirPath string) {
	if err := platform.OpenFolder(dirPath); err != nil {
		log.Printf("Error opening folder %s: %v", dirPath, err)
		ui.appendLog(ui.localization.GetText(KeyErrorOpeningFolder) + ": " + err.Error())
	}
}

// onBrowseDirectory handles output directory browsing
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outputEntry.SetText(uri.Path())
		ui.settings.SetOutputDirectory(uri.Path())
	}, ui.window)
}

// onBrowseCookieFile handles cookie file browsing
func (ui *RootUI) onBrowseCookieFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		ui.cookieEntry.SetText(reader.URI().Path())
		ui.settings.SetCookieFile(reader.URI().Path())
	}, ui.window)
}

// onImportCookies exports cookies from the configured browser for the
// platform currently matched by the URL field.
func (ui *RootUI) onImportCookies() {
	rawURL := strings.TrimSpace(ui.urlEntry.Text)
	domain := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		// Drop the host prefix so the suffix filter also catches
		// cookies stored for the bare domain.
		domain = strings.TrimPrefix(parsed.Hostname(), "www.")
	}
	if domain == "" {
		ui.appendLog(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	outputPath := filepath.Join(ui.settings.GetOutputDirectory(), "cookies.txt")
	opts := cookies.ExportOptions{
		Browser:    ui.settings.GetCookieBrowser(),
		Domain:     domain,
		OutputPath: outputPath,
	}

	// Browser cookie stores can be slow to scan; do it off the UI thread.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		count, err := cookies.ExportFromBrowser(ctx, opts)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Cookie import failed for %s: %v", domain, err)
				ui.appendLog(ui.localization.GetText(KeyCookiesImportError) + ": " + err.Error())
				return
			}
			ui.cookieEntry.SetText(outputPath)
			ui.settings.SetCookieFile(outputPath)
			ui.appendLog(fmt.Sprintf("%s: %d (%s)",
				ui.localization.GetText(KeyCookiesImported), count, domain))
		})
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.outputEntry.SetText(ui.settings.GetOutputDirectory())
		ui.cookieEntry.SetText(ui.settings.GetCookieFile())
		ui.kindRadio.SetSelected(ui.localization.KindText(ui.settings.GetOutputKind()))
		ui.onLanguageChange(ui.settings.GetLanguage())
	})
}

// setBusy toggles input availability while a download is running.
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.downloadBtn.Disable()
		ui.urlEntry.Disable()
		ui.kindRadio.Disable()
		ui.outputEntry.Disable()
		ui.cookieEntry.Disable()
		ui.stopBtn.Enable()
	} else {
		ui.downloadBtn.Enable()
		ui.urlEntry.Enable()
		ui.kindRadio.Enable()
		ui.outputEntry.Enable()
		ui.cookieEntry.Enable()
		ui.stopBtn.Disable()
	}
}

// updateHistoryItem updates a history list item with current data
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.tasks) {
		return
	}
	task := ui.tasks[id]
	if task == nil {
		return
	}

	if row, ok := item.(*HistoryRow); ok {
		row.SetOnReveal(ui.onRevealTaskFolder)
		row.UpdateTask(task)
		row.Refresh()
	}
}

// refreshHistory reloads the task list from the service.
func (ui *RootUI) refreshHistory() {
	ui.tasks = ui.downloadSvc.GetAllTasks()
	ui.historyList.Refresh()
}

// shouldSkipProgressRefresh limits UI refreshes during rapid progress
// callbacks; terminal updates always pass through.
func (ui *RootUI) shouldSkipProgressRefresh(task *model.DownloadTask) bool {
	if task.Status.IsFinished() {
		return false
	}

	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return true
	}
	ui.lastUIUpdate = now
	return false
}

// onTaskUpdate handles task updates from the download service
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	if task == nil {
		return
	}
	if ui.shouldSkipProgressRefresh(task) {
		return
	}

	fyne.Do(func() {
		if task.ID == ui.activeTaskID {
			ui.updateProgressPanel(task)
		}
		ui.refreshHistory()

		if task.Status.IsFinished() {
			ui.handleFinishedTask(task)
		}
	})
}

// updateProgressPanel reflects the active task on the progress bar and
// status line.
func (ui *RootUI) updateProgressPanel(task *model.DownloadTask) {
	ui.progressBar.SetValue(task.Progress)

	switch {
	case task.Status == model.TaskStatusError:
		ui.statusLabel.SetText(IconError + " " + ui.localization.FailureText(task.FailureKind))
	case task.Status == model.TaskStatusCompleted:
		ui.progressBar.SetValue(1)
		ui.statusLabel.SetText(IconDone + " " + ui.localization.GetText(KeyDownloadCompleted))
	case task.Stage == model.StageConverting:
		ui.statusLabel.SetText(ui.localization.GetText(KeyConverting) + MiddleDotSeparator + task.GetDisplayTitle())
	case task.Status == model.TaskStatusDownloading:
		line := fmt.Sprintf(ProgressLabelFormat, task.Percent)
		if task.Speed != "" {
			line += MiddleDotSeparator + task.Speed
		}
		if task.ETASec > 0 {
			line += MiddleDotSeparator + task.GetETAString()
		}
		ui.statusLabel.SetText(line)
	default:
		ui.statusLabel.SetText(ui.localization.GetText(KeyFetching))
	}
}

// handleFinishedTask logs the outcome, notifies, and re-enables input.
func (ui *RootUI) handleFinishedTask(task *model.DownloadTask) {
	switch task.Status {
	case model.TaskStatusCompleted:
		ui.appendLog(IconDone + " " + ui.localization.GetText(KeyDownloadCompleted) + ": " + task.GetDisplayTitle())
		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyDownloadCompleted),
			Content: task.GetDisplayTitle(),
		})
	case model.TaskStatusError:
		msg := ui.localization.FailureText(task.FailureKind)
		if task.LastError != "" {
			msg += ": " + task.LastError
		}
		ui.appendLog(IconError + " " + msg)
	case model.TaskStatusStopped:
		ui.appendLog(ui.localization.GetText(KeyDownloadStopped) + ": " + task.GetDisplayTitle())
	}

	if task.ID == ui.activeTaskID || !ui.downloadSvc.Busy() {
		ui.activeTaskID = ""
		ui.setBusy(false)
	}
}

// appendLog adds a line to the log panel, trimming old entries.
func (ui *RootUI) appendLog(line string) {
	ui.logLines = append(ui.logLines, time.Now().Format("15:04:05")+" "+line)
	if len(ui.logLines) > MaxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxLogLines:]
	}
	ui.logLabel.SetText(strings.Join(ui.logLines, "\n"))
	ui.logLabel.Refresh()
}

// onClearLog empties the log panel.
func (ui *RootUI) onClearLog() {
	ui.logLines = nil
	ui.logLabel.SetText("")
	ui.logLabel.Refresh()
}
