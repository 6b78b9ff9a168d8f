package ui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/sorabatch/sora-batch/internal/automation"
	"github.com/sorabatch/sora-batch/internal/config"
	"github.com/sorabatch/sora-batch/internal/model"
	"github.com/sorabatch/sora-batch/internal/platform"
	"github.com/sorabatch/sora-batch/internal/sheet"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	service      *automation.Service
	logger       *zap.SugaredLogger

	workbook *sheet.Workbook
	tasks    []*model.Task

	// Top controls
	workbookEntry    *widget.Entry
	browseBtn        *widget.Button
	templateBtn      *widget.Button
	loadBtn          *widget.Button
	includeCompleted *widget.Check
	browserSelect    *widget.Select
	startBtn         *widget.Button
	stopBtn          *widget.Button

	// Task list
	taskList *widget.List

	// Progress and log pane
	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	logLabel    *widget.Label
	logScroll   *container.Scroll
	logLines    []string
	logMutex    sync.Mutex

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, service *automation.Service, logger *zap.SugaredLogger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		service:      service,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	service.SetUpdateCallback(ui.onTaskUpdate)
	service.SetLogCallback(ui.onServiceLog)
	service.SetLoginRequiredCallback(ui.onLoginRequired)
	service.SetFinishedCallback(ui.onRunFinished)

	ui.setupUI()
	return ui
}

// Settings returns the settings manager, used when wiring services in main
func (ui *RootUI) Settings() *config.Settings {
	return ui.settings
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Workbook row
	ui.workbookEntry = widget.NewEntry()
	ui.workbookEntry.SetPlaceHolder("tasks.xlsx")
	ui.workbookEntry.SetText(ui.settings.GetWorkbookPath())

	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseWorkbook)
	ui.templateBtn = widget.NewButton(ui.localization.GetText(KeyCreateTemplate), ui.onCreateTemplate)

	workbookRow := container.NewBorder(
		nil, nil,
		widget.NewLabel(ui.localization.GetText(KeyWorkbook)+":"),
		container.NewHBox(ui.browseBtn, ui.templateBtn),
		ui.workbookEntry,
	)

	// Run controls row
	ui.loadBtn = widget.NewButton(ui.localization.GetText(KeyLoadTasks), ui.onLoadTasks)
	ui.includeCompleted = widget.NewCheck(ui.localization.GetText(KeyIncludeCompleted), nil)

	browserOptions := make([]string, 0, config.MaxBrowserCount)
	for i := config.MinBrowserCount; i <= config.MaxBrowserCount; i++ {
		browserOptions = append(browserOptions, strconv.Itoa(i))
	}
	ui.browserSelect = widget.NewSelect(browserOptions, func(value string) {
		if count, err := strconv.Atoi(value); err == nil {
			ui.settings.SetBrowserCount(count)
		}
	})
	ui.browserSelect.SetSelected(strconv.Itoa(ui.settings.GetBrowserCount()))

	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyStart), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	controlsRow := container.NewHBox(
		ui.loadBtn,
		ui.includeCompleted,
		widget.NewLabel(ui.localization.GetText(KeyBrowsers)+":"),
		ui.browserSelect,
		ui.startBtn,
		ui.stopBtn,
		settingsBtn,
	)

	top := container.NewVBox(workbookRow, controlsRow)

	// Task list
	ui.taskList = widget.NewList(
		func() int {
			return len(ui.tasks)
		},
		func() fyne.CanvasObject { return ui.createTaskItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTaskItem(id, obj) },
	)

	// Progress bar and status line
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel("")

	// Log pane
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logScroll = container.NewVScroll(ui.logLabel)
	ui.logScroll.SetMinSize(fyne.NewSize(0, LogPaneHeight))

	bottom := container.NewVBox(
		ui.progressBar,
		ui.statusLabel,
		widget.NewSeparator(),
		ui.logScroll,
	)

	content := container.NewBorder(
		top,    // top
		bottom, // bottom
		nil,    // left
		nil,    // right
		ui.taskList,
	)

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

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.templateBtn.SetText(ui.localization.GetText(KeyCreateTemplate))
	ui.loadBtn.SetText(ui.localization.GetText(KeyLoadTasks))
	ui.includeCompleted.Text = ui.localization.GetText(KeyIncludeCompleted)
	ui.includeCompleted.Refresh()
	ui.startBtn.SetText(ui.localization.GetText(KeyStart))
	ui.stopBtn.SetText(ui.localization.GetText(KeyStop))
	ui.taskList.Refresh()
}

// onBrowseWorkbook handles workbook file selection
func (ui *RootUI) onBrowseWorkbook() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		ui.workbookEntry.SetText(path)
		ui.settings.SetWorkbookPath(path)
	}, ui.window)
}

// onCreateTemplate prompts for a save path and writes the starter
// workbook template there
func (ui *RootUI) onCreateTemplate() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		_ = writer.Close()

		if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
			path += ".xlsx"
		}

		if err := sheet.WriteTemplate(path); err != nil {
			ui.logger.Errorw("Failed to create template", "path", path, "error", err)
			dialog.ShowError(err, ui.window)
			return
		}

		ui.workbookEntry.SetText(path)
		ui.settings.SetWorkbookPath(path)
		ui.appendLog(ui.localization.GetText(KeyTemplateCreated) + ": " + path)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyTemplateCreated)), ui.window.Canvas())
	}, ui.window)
}

// onLoadTasks opens the workbook and loads its pending rows
func (ui *RootUI) onLoadTasks() {
	path := strings.TrimSpace(ui.workbookEntry.Text)
	if path == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoWorkbook)), ui.window.Canvas())
		return
	}

	if ui.workbook != nil {
		_ = ui.workbook.Close()
		ui.workbook = nil
	}

	workbook, err := sheet.Open(path)
	if err != nil {
		ui.logger.Errorw("Failed to open workbook", "path", path, "error", err)
		dialog.ShowError(err, ui.window)
		return
	}

	tasks, err := workbook.Tasks(ui.includeCompleted.Checked)
	if err != nil {
		_ = workbook.Close()
		ui.logger.Errorw("Failed to read tasks", "path", path, "error", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.workbook = workbook
	ui.tasks = tasks
	ui.settings.SetWorkbookPath(path)

	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyTasksLoaded), len(tasks)))
	ui.appendLog(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyTasksLoaded), len(tasks)))
	ui.taskList.Refresh()

	if len(tasks) == 0 {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoTasks)), ui.window.Canvas())
	}
}

// onStartClick begins processing the loaded tasks
func (ui *RootUI) onStartClick() {
	if ui.service.IsRunning() {
		return
	}
	if ui.workbook == nil || len(ui.tasks) == 0 {
		ui.onLoadTasks()
		if ui.workbook == nil || len(ui.tasks) == 0 {
			return
		}
	}

	ui.service.Configure(
		ui.settings.GetProfileName(),
		ui.settings.GetBrowserCount(),
		ui.settings.GetTaskDelay(),
	)
	ui.service.SetWriter(ui.workbook)
	ui.service.SetTasks(ui.tasks)

	if err := ui.service.Start(); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.startBtn.Disable()
	ui.loadBtn.Disable()
	ui.stopBtn.Enable()
	ui.appendLog(ui.localization.GetText(KeyRunStarted))
}

// onStopClick requests a graceful stop of the current run
func (ui *RootUI) onStopClick() {
	ui.service.Stop()
	ui.stopBtn.Disable()
	ui.appendLog(ui.localization.GetText(KeyStoppingRun))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// createTaskItem creates a new task item widget
func (ui *RootUI) createTaskItem() fyne.CanvasObject {
	placeholder := &model.Task{Status: model.TaskStatusPending}
	taskRow := NewTaskRow(placeholder, ui.localization)
	taskRow.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
	return taskRow
}

// updateTaskItem updates a task item with current data
func (ui *RootUI) updateTaskItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.tasks) {
		return
	}

	if taskRow, ok := item.(*TaskRow); ok {
		taskRow.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
		taskRow.UpdateTask(ui.tasks[id])
	}
}

// onRevealFile reveals a result file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Errorw("Failed to reveal file", "path", filePath, "error", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onOpenFile opens a result file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Errorw("Failed to open file", "path", filePath, "error", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onCopyPath copies a result path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	fyne.CurrentApp().Clipboard().SetContent(filePath)
}

// onTaskUpdate handles task updates from the automation service
func (ui *RootUI) onTaskUpdate(task *model.Task) {
	ui.uiUpdateMutex.Lock()
	now := time.Now()
	throttled := now.Sub(ui.lastUIUpdate) < UIUpdateDebounce && task.Status.IsActive()
	if !throttled {
		ui.lastUIUpdate = now
	}
	ui.uiUpdateMutex.Unlock()
	if throttled {
		return
	}

	fyne.Do(func() {
		ui.taskList.Refresh()
		ui.updateProgress()

		if task.Status == model.TaskStatusCompleted && ui.settings.GetRevealOnComplete() && task.OutputPath != "" {
			ui.onRevealFile(task.OutputPath)
		}
	})
}

// updateProgress refreshes the progress bar from finished task counts
func (ui *RootUI) updateProgress() {
	if len(ui.tasks) == 0 {
		ui.progressBar.SetValue(0)
		return
	}

	finished := 0
	for _, task := range ui.tasks {
		if task.Status.IsFinished() {
			finished++
		}
	}
	ui.progressBar.SetValue(float64(finished) / float64(len(ui.tasks)))
	ui.statusLabel.SetText(fmt.Sprintf("%d / %d", finished, len(ui.tasks)))
}

// onServiceLog appends a service message to the log pane
func (ui *RootUI) onServiceLog(message string) {
	fyne.Do(func() {
		ui.appendLog(message)
	})
}

// appendLog adds a line to the log pane, trimming old lines
func (ui *RootUI) appendLog(message string) {
	ui.logMutex.Lock()
	timestamp := time.Now().Format("15:04:05")
	ui.logLines = append(ui.logLines, timestamp+" "+message)
	if len(ui.logLines) > MaxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxLogLines:]
	}
	text := strings.Join(ui.logLines, "\n")
	ui.logMutex.Unlock()

	ui.logLabel.SetText(text)
	ui.logScroll.ScrollToBottom()
}

// onLoginRequired tells the user to sign in through the browser window
func (ui *RootUI) onLoginRequired(profile string) {
	fyne.Do(func() {
		dialog.ShowInformation(
			ui.localization.GetText(KeyLoginRequired),
			fmt.Sprintf("%s (%s: %s)", ui.localization.GetText(KeyLoginMessage), ui.localization.GetText(KeyProfile), profile),
			ui.window,
		)
	})
}

// onRunFinished resets the controls and reports the outcome
func (ui *RootUI) onRunFinished(completed, failed int) {
	fyne.Do(func() {
		ui.startBtn.Enable()
		ui.loadBtn.Enable()
		ui.stopBtn.Disable()
		ui.updateProgress()

		summary := fmt.Sprintf("%s: %d %s, %d %s",
			ui.localization.GetText(KeyRunFinished),
			completed, string(model.TaskStatusCompleted),
			failed, string(model.TaskStatusFailed))
		ui.appendLog(summary)
		ui.statusLabel.SetText(summary)

		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyAppTitle),
			Content: summary,
		})
	})
}
