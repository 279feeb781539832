package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/translateai/translateai-desktop/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	intervalEntry  *widget.Entry
	stepEntry      *widget.Entry
	languageSelect *widget.Select
	logLevelSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
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
	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder(strconv.Itoa(config.MinTickIntervalMS) + "-" + strconv.Itoa(config.MaxTickIntervalMS))

	sd.stepEntry = widget.NewEntry()
	sd.stepEntry.SetPlaceHolder(strconv.Itoa(config.MinProgressStep) + "-" + strconv.Itoa(config.MaxProgressStep))

	// Language selection shows display names and stores codes
	sd.languageCodes = make(map[string]string)
	languageNames := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyTickInterval)+":"),
		sd.intervalEntry,

		widget.NewLabel(sd.localization.GetText(KeyProgressStep)+":"),
		sd.stepEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,
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
	sd.intervalEntry.SetText(strconv.Itoa(sd.settings.GetTickIntervalMS()))
	sd.stepEntry.SetText(strconv.Itoa(sd.settings.GetProgressStep()))
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Unparsable numbers keep the previous value
	if ms, err := strconv.Atoi(sd.intervalEntry.Text); err == nil {
		sd.settings.SetTickIntervalMS(ms)
	}
	if step, err := strconv.Atoi(sd.stepEntry.Text); err == nil {
		sd.settings.SetProgressStep(step)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
