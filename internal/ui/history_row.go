package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// HistoryRow is a compact widget showing one download in the history list:
// title, platform, status and an open-folder action for finished items.
type HistoryRow struct {
	widget.BaseWidget

	task         *model.DownloadTask
	localization *Localization

	titleLabel  *widget.Label
	detailLabel *widget.Label
	statusLabel *widget.Label
	openBtn     *widget.Button

	onReveal func(dirPath string)
}

// NewHistoryRow creates a history row for the given task.
func NewHistoryRow(task *model.DownloadTask, localization *Localization) *HistoryRow {
	if task == nil {
		task = &model.DownloadTask{ID: "placeholder", Status: model.TaskStatusPending}
	}

	hr := &HistoryRow{
		task:         task,
		localization: localization,
	}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	hr.updateFromTask()
	return hr
}

// SetOnReveal sets the open-folder callback. The callback receives the
// directory containing the downloaded file.
func (hr *HistoryRow) SetOnReveal(onReveal func(dirPath string)) {
	hr.onReveal = onReveal
}

// UpdateTask replaces the row's task and refreshes the display.
func (hr *HistoryRow) UpdateTask(task *model.DownloadTask) {
	if task == nil {
		return
	}
	hr.task = task
	hr.updateFromTask()
}

func (hr *HistoryRow) createUI() {
	hr.titleLabel = widget.NewLabel("")
	hr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	hr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	hr.detailLabel = widget.NewLabel("")
	hr.detailLabel.Truncation = fyne.TextTruncateEllipsis

	hr.statusLabel = widget.NewLabel("")

	hr.openBtn = widget.NewButton(IconFolder, func() {
		if hr.onReveal == nil || hr.task.OutputPath == "" {
			return
		}
		hr.onReveal(filepath.Dir(hr.task.OutputPath))
	})
	hr.openBtn.Importance = widget.LowImportance
}

// updateFromTask refreshes labels and button state from the current task.
func (hr *HistoryRow) updateFromTask() {
	title := strings.TrimSpace(hr.task.GetDisplayTitle())
	title = strings.ReplaceAll(title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	hr.titleLabel.SetText(title)

	detail := hr.task.Platform
	if detail == "" {
		detail = DashPlaceholder
	}
	detail += MiddleDotSeparator + strings.ToUpper(hr.task.Kind.Ext())
	hr.detailLabel.SetText(detail)

	switch hr.task.Status {
	case model.TaskStatusError:
		hr.statusLabel.Importance = widget.DangerImportance
		hr.statusLabel.SetText(IconError + " " + hr.localization.FailureText(hr.task.FailureKind))
	case model.TaskStatusCompleted:
		hr.statusLabel.Importance = widget.SuccessImportance
		hr.statusLabel.SetText(IconDone + " " + hr.localization.GetText(KeyDownloadCompleted))
	case model.TaskStatusDownloading, model.TaskStatusStarting:
		hr.statusLabel.Importance = widget.HighImportance
		hr.statusLabel.SetText(fmt.Sprintf(ProgressLabelFormat, hr.task.Percent))
	case model.TaskStatusStopped, model.TaskStatusStopping:
		hr.statusLabel.Importance = widget.MediumImportance
		hr.statusLabel.SetText(hr.localization.GetText(KeyDownloadStopped))
	default:
		hr.statusLabel.Importance = widget.MediumImportance
		hr.statusLabel.SetText(hr.task.Status.String())
	}

	if hr.task.Status == model.TaskStatusCompleted && hr.task.OutputPath != "" {
		hr.openBtn.Enable()
	} else {
		hr.openBtn.Disable()
	}

	hr.titleLabel.Refresh()
	hr.detailLabel.Refresh()
	hr.statusLabel.Refresh()
}

// CreateRenderer creates the widget renderer.
func (hr *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(hr.titleLabel, hr.detailLabel)
	row := container.NewBorder(nil, nil, nil, container.NewHBox(hr.statusLabel, hr.openBtn), text)
	return widget.NewSimpleRenderer(row)
}

// MinSize keeps rows readable even when the list is narrow.
func (hr *HistoryRow) MinSize() fyne.Size {
	min := hr.BaseWidget.MinSize()
	if min.Width < HistoryRowMinWidth {
		min.Width = HistoryRowMinWidth
	}
	if min.Height < HistoryRowMinHeight {
		min.Height = HistoryRowMinHeight
	}
	return min
}
