package ui

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/translateai/translateai-desktop/internal/account"
	"github.com/translateai/translateai-desktop/internal/config"
	"github.com/translateai/translateai-desktop/internal/logging"
	"github.com/translateai/translateai-desktop/internal/model"
	"github.com/translateai/translateai-desktop/internal/platform"
	"github.com/translateai/translateai-desktop/internal/translate"
)

var errNoWindow = errors.New("no window to show the acknowledgment in")

// featureCard groups the widgets of one marketing card so texts can be relocalized
type featureCard struct {
	card     *widget.Card
	body     *widget.Label
	titleKey string
	textKey  string
}

// RootUI represents the home page window
type RootUI struct {
	window       fyne.Window
	translateSvc translate.Translator
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	log          *log.Logger
	logs         *logging.Set

	// Navigation
	brandText  *canvas.Text
	loginBtn   *widget.Button
	menuBtn    *widget.Button
	mobileMenu *MobileMenu

	// Hero
	heroTitle    *canvas.Text
	heroSubtitle *canvas.Text

	// Upload card
	errorBanner  *fyne.Container
	errorLabel   *widget.Label
	uploadBtn    *widget.Button
	uploadLabel  *widget.Label
	startBtn     *widget.Button
	progress     *ProgressPanel
	downloadBtn  *widget.Button
	featureCards []*featureCard
	footerLabel  *widget.Label

	loginDialog *LoginDialog

	// last rendered snapshot
	state model.HomeState
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, translateSvc translate.Translator, settings *config.Settings, logs *logging.Set) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if logs == nil {
		logs = logging.DiscardSet()
	}
	logger := logs.Root()

	ui := &RootUI{
		window:       window,
		translateSvc: translateSvc,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		log:          logger,
		logs:         logs,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	form := account.NewForm(logs.Component("account"), ui.translateSvc.CloseLogin)
	ui.loginDialog = NewLoginDialog(window, localization, form)
	ui.loginDialog.SetSubmittedCallback(ui.onAccountSubmitted)

	// Set up callback for state updates
	ui.translateSvc.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	ui.render(ui.translateSvc.State())

	window.SetOnDropped(ui.onFilesDropped)
	window.SetOnClosed(ui.translateSvc.Close)

	logger.Debug("RootUI initialized", "mobile", ui.mobile.IsMobileDevice(), "language", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Navigation bar
	ui.brandText = canvas.NewText("", ColorBrandPurple)
	ui.brandText.TextSize = BrandTextSize
	ui.brandText.TextStyle = fyne.TextStyle{Bold: true}

	ui.loginBtn = widget.NewButtonWithIcon("", theme.AccountIcon(), ui.onToggleLogin)
	ui.loginBtn.Importance = widget.HighImportance

	ui.menuBtn = ui.mobile.CreateMenuButton(ui.translateSvc.ToggleMobileMenu)
	ui.mobileMenu = ui.mobile.NewMobileMenu("", "", ui.onOpenLoginFromMenu, ui.onShowSettings)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var navRight fyne.CanvasObject
	if ui.mobile.IsMobileDevice() {
		navRight = ui.menuBtn
	} else {
		ui.menuBtn.Hide()
		navRight = container.NewHBox(settingsBtn, ui.loginBtn)
	}
	nav := container.NewVBox(
		container.NewBorder(nil, nil, ui.brandText, navRight),
		ui.mobileMenu.Container,
	)

	// Hero
	ui.heroTitle = canvas.NewText("", color.White)
	ui.heroTitle.TextSize = HeroTitleSize
	ui.heroTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.heroTitle.Alignment = fyne.TextAlignCenter
	ui.heroSubtitle = canvas.NewText("", color.White)
	ui.heroSubtitle.TextSize = HeroSubtitleSize
	ui.heroSubtitle.Alignment = fyne.TextAlignCenter

	// Error banner
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	errorFill := canvas.NewRectangle(ColorErrorFill)
	errorFill.StrokeColor = ColorErrorText
	errorFill.StrokeWidth = 1
	errorFill.CornerRadius = 4
	dismissBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), ui.translateSvc.ClearError)
	dismissBtn.Importance = widget.LowImportance
	ui.errorBanner = container.NewStack(errorFill, container.NewPadded(
		container.NewBorder(nil, nil, nil, dismissBtn, ui.errorLabel),
	))
	ui.errorBanner.Hide()

	// Upload area
	ui.uploadBtn = widget.NewButtonWithIcon("", theme.UploadIcon(), ui.onPickFile)
	ui.uploadBtn.Importance = widget.LowImportance
	ui.uploadLabel = widget.NewLabel("")
	ui.uploadLabel.Alignment = fyne.TextAlignCenter
	ui.uploadLabel.Truncation = fyne.TextTruncateEllipsis
	dashed := canvas.NewRectangle(color.Transparent)
	dashed.StrokeColor = ColorUploadBorder
	dashed.StrokeWidth = 2
	dashed.CornerRadius = 8
	dashed.SetMinSize(fyne.NewSize(CardMaxWidth, UploadAreaHeight))
	uploadArea := container.NewStack(dashed, container.NewCenter(container.NewVBox(ui.uploadBtn, ui.uploadLabel)))

	ui.startBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), ui.onStartTranslation)
	ui.startBtn.Importance = widget.HighImportance
	ui.startBtn.IconPlacement = widget.ButtonIconTrailingText

	ui.progress = NewProgressPanel(ui.localization)

	ui.downloadBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), ui.onDownload)
	ui.downloadBtn.Importance = widget.SuccessImportance
	ui.downloadBtn.IconPlacement = widget.ButtonIconTrailingText

	cardFill := canvas.NewRectangle(ColorSurface)
	cardFill.CornerRadius = 8
	uploadCard := container.NewStack(cardFill, container.NewPadded(container.NewVBox(
		ui.errorBanner,
		uploadArea,
		ui.startBtn,
		ui.progress,
		ui.downloadBtn,
	)))

	// Features
	ui.featureCards = []*featureCard{
		ui.newFeatureCard(theme.ComputerIcon(), KeyFeatureLangTitle, KeyFeatureLangText),
		ui.newFeatureCard(theme.ConfirmIcon(), KeyFeatureAccTitle, KeyFeatureAccText),
		ui.newFeatureCard(theme.InfoIcon(), KeyFeatureRateTitle, KeyFeatureRateText),
	}
	cards := make([]fyne.CanvasObject, 0, len(ui.featureCards))
	for _, fc := range ui.featureCards {
		cards = append(cards, fc.card)
	}

	// Footer
	ui.footerLabel = widget.NewLabel("")
	ui.footerLabel.Alignment = fyne.TextAlignCenter

	page := container.NewVBox(
		ui.heroTitle,
		ui.heroSubtitle,
		container.NewCenter(uploadCard),
		ui.mobile.FeatureGrid(cards...),
	)

	background := canvas.NewLinearGradient(ColorGradientFrom, ColorGradientTo, 135)
	content := container.NewBorder(
		container.NewPadded(nav), // top
		ui.footerLabel,           // bottom
		nil,                      // left
		nil,                      // right
		container.NewVScroll(container.NewPadded(page)), // center
	)

	ui.window.SetContent(container.NewStack(background, content))
	ui.refreshUITexts()
}

// newFeatureCard builds one marketing card
func (ui *RootUI) newFeatureCard(icon fyne.Resource, titleKey, textKey string) *featureCard {
	img := widget.NewIcon(icon)
	body := widget.NewLabel("")
	body.Wrapping = fyne.TextWrapWord

	return &featureCard{
		card:     widget.NewCard("", "", container.NewVBox(container.NewHBox(img), body)),
		body:     body,
		titleKey: titleKey,
		textKey:  textKey,
	}
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
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
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
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.brandText.Text = l.GetText(KeyAppTitle)
	ui.brandText.Refresh()
	ui.loginBtn.SetText(l.GetText(KeyLoginRegister))
	ui.mobileMenu.LoginBtn.SetText(l.GetText(KeyLoginRegister))
	ui.mobileMenu.SettingsBtn.SetText(l.GetText(KeySettings))

	ui.heroTitle.Text = l.GetText(KeyHeroTitle)
	ui.heroTitle.Refresh()
	ui.heroSubtitle.Text = l.GetText(KeyHeroSubtitle)
	ui.heroSubtitle.Refresh()

	ui.downloadBtn.SetText(l.GetText(KeyDownloadTranslated))
	for _, fc := range ui.featureCards {
		fc.card.SetTitle(l.GetText(fc.titleKey))
		fc.body.SetText(l.GetText(fc.textKey))
	}
	ui.footerLabel.SetText(l.GetText(KeyFooter))

	ui.progress.RefreshTexts()
	ui.loginDialog.RefreshTexts()

	// Texts that depend on state
	ui.render(ui.state)
}

// onStateUpdate handles snapshots from the translation service
func (ui *RootUI) onStateUpdate(state model.HomeState) {
	fyne.Do(func() {
		ui.render(state)
	})
}

// render applies a snapshot to the widgets
func (ui *RootUI) render(state model.HomeState) {
	ui.state = state
	l := ui.localization

	if state.HasError() {
		ui.errorLabel.SetText(l.LocalizeError(state.Error))
		ui.errorBanner.Show()
	} else {
		ui.errorBanner.Hide()
	}

	ui.uploadLabel.SetText(state.FileLabel(l.GetText(KeyUploadPrompt)))

	phase := state.Phase()
	if state.ShowStartButton() {
		if phase.CanStart() {
			ui.startBtn.SetText(l.GetText(KeyStartTranslation))
			ui.startBtn.Enable()
		} else {
			ui.startBtn.SetText(l.GetText(KeyTranslating))
			ui.startBtn.Disable()
		}
		ui.startBtn.Show()
	} else {
		ui.startBtn.Hide()
	}

	if phase.IsActive() {
		ui.progress.SetPercent(state.Progress)
		ui.progress.Show()
	} else {
		ui.progress.Hide()
	}

	if phase.IsFinished() {
		ui.downloadBtn.Show()
	} else {
		ui.downloadBtn.Hide()
	}

	ui.mobileMenu.SetOpen(state.MobileMenuOpen)

	if state.LoginVisible {
		ui.loginDialog.Show()
	} else {
		ui.loginDialog.Hide()
	}
}

// onPickFile opens the document picker
func (ui *RootUI) onPickFile() {
	fd := dialog.NewFileOpen(ui.onFilePicked, ui.window)
	fd.SetFilter(platform.AcceptFilter())
	if location := platform.StartLocation(); location != nil {
		fd.SetLocation(location)
	}
	fd.Show()
}

// onFilePicked handles the picker result
func (ui *RootUI) onFilePicked(reader fyne.URIReadCloser, err error) {
	if err != nil {
		ui.translateSvc.UploadFailed(err)
		return
	}

	files, err := platform.SelectedFilesFromReader(reader)
	if err != nil {
		ui.translateSvc.UploadFailed(err)
		return
	}
	ui.upload(files)
}

// onFilesDropped treats files dropped on the window as an upload
func (ui *RootUI) onFilesDropped(_ fyne.Position, uris []fyne.URI) {
	ui.upload(platform.SelectedFilesFromURIs(uris))
}

func (ui *RootUI) upload(files []model.SelectedFile) {
	if len(files) > 0 && !platform.IsAcceptedExtension(files[0].Name) {
		// Hint only; the upload goes ahead
		ui.log.Warn("Selected file is not a supported document type", "name", files[0].Name)
	}
	ui.translateSvc.Upload(files...)
}

// onStartTranslation handles the Start Translation button
func (ui *RootUI) onStartTranslation() {
	ui.translateSvc.SetTiming(ui.settings.GetTickInterval(), ui.settings.GetProgressStep())
	if err := ui.translateSvc.StartTranslation(); err != nil {
		if translate.IsNoFile(err) {
			ui.log.Debug("Start pressed before a file was chosen")
			return
		}
		ui.log.Warn("Translation not started", "err", err)
	}
}

// onDownload shows the download acknowledgment
func (ui *RootUI) onDownload() {
	msg, err := ui.translateSvc.Download()
	if err != nil {
		return
	}

	if err := ui.acknowledge(msg); err != nil {
		ui.translateSvc.DownloadFailed(err)
	}
}

// acknowledge shows a blocking information dialog
func (ui *RootUI) acknowledge(msg string) error {
	if ui.window == nil || ui.window.Canvas() == nil {
		return errNoWindow
	}
	text := msg
	if msg == translate.DownloadAcknowledgment {
		text = ui.localization.GetText(KeyDownloadAck)
	}
	dialog.ShowInformation(ui.localization.GetText(KeyDownloadTranslated), text, ui.window)
	return nil
}

// onToggleLogin opens or closes the login modal
func (ui *RootUI) onToggleLogin() {
	if ui.state.MobileMenuOpen {
		ui.translateSvc.ToggleMobileMenu()
	}
	ui.translateSvc.ToggleLogin()
}

// onOpenLoginFromMenu closes the mobile drawer and shows the login modal
func (ui *RootUI) onOpenLoginFromMenu() {
	if ui.state.MobileMenuOpen {
		ui.translateSvc.ToggleMobileMenu()
	}
	ui.translateSvc.OpenLogin()
}

// onAccountSubmitted records a submission; the modal stays open
func (ui *RootUI) onAccountSubmitted(sub account.Submission) {
	ui.log.Info("Account form submitted", "id", sub.ID, "mode", sub.Mode)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running services
func (ui *RootUI) applySettings() {
	ui.translateSvc.SetTiming(ui.settings.GetTickInterval(), ui.settings.GetProgressStep())
	ui.logs.SetLevel(ui.settings.GetLogLevel())

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}
