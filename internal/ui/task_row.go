package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sorabatch/sora-batch/internal/model"
)

// TaskRow represents a compact row for one workbook task
type TaskRow struct {
	widget.BaseWidget

	task         *model.Task
	localization *Localization

	// UI components
	rowLabel    *widget.Label
	promptLabel *widget.Label
	detailLabel *widget.Label
	statusLabel *widget.Label

	// Action buttons
	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open file with default app
	copyBtn   *widget.Button // copy output path

	// Callbacks
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task *model.Task, localization *Localization) *TaskRow {
	if task == nil {
		task = &model.Task{Status: model.TaskStatusPending}
	}

	tr := &TaskRow{
		task:         task,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(
	onReveal func(filePath string),
	onOpen func(filePath string),
	onCopyPath func(filePath string),
) {
	tr.onReveal = onReveal
	tr.onOpen = onOpen
	tr.onCopyPath = onCopyPath
}

// UpdateTask updates the row with new task data
func (tr *TaskRow) UpdateTask(task *model.Task) {
	if task == nil {
		return
	}
	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

// createUI creates the UI components
func (tr *TaskRow) createUI() {
	tr.rowLabel = widget.NewLabel("")
	tr.rowLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.promptLabel = widget.NewLabel("")
	tr.promptLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.promptLabel.Truncation = fyne.TextTruncateEllipsis
	tr.promptLabel.Alignment = fyne.TextAlignLeading

	tr.detailLabel = widget.NewLabel("")
	tr.detailLabel.Alignment = fyne.TextAlignLeading

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing

	tr.revealBtn = widget.NewButton(IconFolder+" "+tr.localization.GetText(KeyReveal), func() {
		if tr.onReveal != nil && tr.hasOutputFile() {
			tr.onReveal(tr.task.OutputPath)
		}
	})
	tr.revealBtn.Importance = widget.MediumImportance

	tr.openBtn = widget.NewButton(IconFile+" "+tr.localization.GetText(KeyOpen), func() {
		if tr.onOpen != nil && tr.hasOutputFile() {
			tr.onOpen(tr.task.OutputPath)
		}
	})
	tr.openBtn.Importance = widget.MediumImportance

	tr.copyBtn = widget.NewButton(IconCopy, func() {
		if tr.onCopyPath != nil && tr.hasOutputFile() {
			tr.onCopyPath(tr.task.OutputPath)
		}
	})
	tr.copyBtn.Importance = widget.LowImportance
}

// hasOutputFile reports whether the task produced a usable local file
func (tr *TaskRow) hasOutputFile() bool {
	path := tr.task.OutputPath
	if path == "" || strings.HasPrefix(path, "http") {
		return false
	}
	return strings.Contains(path, "/") || strings.Contains(path, "\\")
}

// updateFromTask updates UI components based on task state
func (tr *TaskRow) updateFromTask() {
	if tr.task == nil {
		return
	}

	tr.rowLabel.SetText(fmt.Sprintf("#%d", tr.task.Row))
	tr.promptLabel.SetText(tr.task.GetDisplayPrompt())

	detail := tr.task.Kind + MiddleDotSeparator + tr.task.AspectRatio
	if tr.task.IsVideo() {
		detail += MiddleDotSeparator + tr.task.Duration + MiddleDotSeparator + tr.task.Resolution
	}
	if tr.task.Profile != "" {
		detail += MiddleDotSeparator + tr.task.Profile
	}
	tr.detailLabel.SetText(detail)

	// Status label color and text
	switch tr.task.Status {
	case model.TaskStatusFailed:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + tr.task.Status.String())
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(IconDone + " " + tr.task.Status.String())
	case model.TaskStatusSubmitting, model.TaskStatusGenerating, model.TaskStatusDownloading:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconPlay + " " + tr.task.Status.String())
	case model.TaskStatusPending:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconWaiting + " " + tr.task.Status.String())
	case model.TaskStatusStopped:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconStop + " " + tr.task.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(tr.task.Status.String())
	}

	tr.updateButtons()
}

// updateButtons enables the file actions once a result file exists
func (tr *TaskRow) updateButtons() {
	if tr.hasOutputFile() && tr.task.Status == model.TaskStatusCompleted {
		tr.revealBtn.Enable()
		tr.openBtn.Enable()
		tr.copyBtn.Enable()
	} else {
		tr.revealBtn.Disable()
		tr.openBtn.Disable()
		tr.copyBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return &taskRowRenderer{taskRow: tr}
}

// taskRowRenderer renders the task row widget
type taskRowRenderer struct {
	taskRow *TaskRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *taskRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *taskRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *taskRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *taskRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *taskRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *taskRowRenderer) createLayout() {
	tr := r.taskRow

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	left := container.NewHBox(fixedWidth(RowNumberWidth, tr.rowLabel))
	center := container.NewVBox(tr.promptLabel, tr.detailLabel)

	actionRow := container.NewHBox(
		tr.revealBtn,
		tr.openBtn,
		tr.copyBtn,
	)
	right := container.NewVBox(
		fixedWidth(StatusLabelWidth, tr.statusLabel),
		actionRow,
	)

	mainContent := container.NewBorder(nil, nil, left, right, center)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
