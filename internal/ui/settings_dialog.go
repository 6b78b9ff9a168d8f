package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sorabatch/sora-batch/internal/config"
	"github.com/sorabatch/sora-batch/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	imageFolderEntry *widget.Entry
	profileEntry     *widget.Entry
	kindSelect       *widget.Select
	ratioSelect      *widget.Select
	durationSelect   *widget.Select
	resolutionSelect *widget.Select
	taskDelayEntry   *widget.Entry
	headlessCheck    *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Image folder selection
	sd.imageFolderEntry = widget.NewEntry()
	sd.imageFolderEntry.SetPlaceHolder("Folder holding images referenced by tasks")

	browseFolderBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseImageFolder)
	imageFolderRow := container.NewBorder(nil, nil, nil, browseFolderBtn, sd.imageFolderEntry)

	// Browser profile name
	sd.profileEntry = widget.NewEntry()
	sd.profileEntry.SetPlaceHolder(config.DefaultProfileName)

	// Default generation values
	sd.kindSelect = widget.NewSelect(sd.settings.GetKindOptions(), func(string) {
		sd.updateKindDependentFields()
	})
	sd.ratioSelect = widget.NewSelect(sd.settings.GetAspectRatioOptions(), nil)
	sd.durationSelect = widget.NewSelect(sd.settings.GetDurationOptions(), nil)
	sd.resolutionSelect = widget.NewSelect(sd.settings.GetResolutionOptions(), nil)

	// Delay between tasks
	sd.taskDelayEntry = widget.NewEntry()
	sd.taskDelayEntry.SetPlaceHolder("3")

	// Headless mode
	sd.headlessCheck = widget.NewCheck(sd.localization.GetText(KeyHeadless), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel("Generation Defaults"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyType)+":"),
		sd.kindSelect,

		widget.NewLabel(sd.localization.GetText(KeyAspectRatio)+":"),
		sd.ratioSelect,

		widget.NewLabel(sd.localization.GetText(KeyDuration)+":"),
		sd.durationSelect,

		widget.NewLabel(sd.localization.GetText(KeyResolution)+":"),
		sd.resolutionSelect,

		widget.NewSeparator(),
		widget.NewLabel("Browser Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyImageFolder)+":"),
		imageFolderRow,

		widget.NewLabel(sd.localization.GetText(KeyProfile)+":"),
		sd.profileEntry,

		widget.NewLabel(sd.localization.GetText(KeyTaskDelay)+":"),
		sd.taskDelayEntry,

		sd.headlessCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.imageFolderEntry.SetText(sd.settings.GetImageFolder())
	sd.profileEntry.SetText(sd.settings.GetProfileName())
	sd.kindSelect.SetSelected(sd.settings.GetDefaultKind())
	sd.ratioSelect.SetSelected(sd.settings.GetDefaultAspectRatio())
	sd.durationSelect.SetSelected(sd.settings.GetDefaultDuration())
	sd.resolutionSelect.SetSelected(sd.settings.GetDefaultResolution())
	sd.taskDelayEntry.SetText(strconv.Itoa(int(sd.settings.GetTaskDelay() / time.Second)))
	sd.headlessCheck.SetChecked(sd.settings.GetHeadless())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.updateKindDependentFields()
}

// updateKindDependentFields disables duration and resolution for image tasks
func (sd *SettingsDialog) updateKindDependentFields() {
	if sd.kindSelect.Selected == model.KindImage {
		sd.durationSelect.Disable()
		sd.resolutionSelect.Disable()
		return
	}
	sd.durationSelect.Enable()
	sd.resolutionSelect.Enable()
}

// onBrowseImageFolder handles image folder browsing
func (sd *SettingsDialog) onBrowseImageFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.imageFolderEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.imageFolderEntry.Text != "" {
		sd.settings.SetImageFolder(sd.imageFolderEntry.Text)
	}
	sd.settings.SetProfileName(sd.profileEntry.Text)

	if sd.kindSelect.Selected != "" {
		sd.settings.SetDefaultKind(sd.kindSelect.Selected)
	}
	if sd.ratioSelect.Selected != "" {
		sd.settings.SetDefaultAspectRatio(sd.ratioSelect.Selected)
	}
	if sd.durationSelect.Selected != "" {
		sd.settings.SetDefaultDuration(sd.durationSelect.Selected)
	}
	if sd.resolutionSelect.Selected != "" {
		sd.settings.SetDefaultResolution(sd.resolutionSelect.Selected)
	}

	if seconds, err := strconv.Atoi(sd.taskDelayEntry.Text); err == nil {
		sd.settings.SetTaskDelay(time.Duration(seconds) * time.Second)
	}

	sd.settings.SetHeadless(sd.headlessCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
