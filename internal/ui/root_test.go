package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/charmbracelet/log"

	"github.com/translateai/translateai-desktop/internal/config"
	"github.com/translateai/translateai-desktop/internal/logging"
	"github.com/translateai/translateai-desktop/internal/model"
	"github.com/translateai/translateai-desktop/internal/translate"
)

func newTestRoot(t *testing.T) (*RootUI, *translate.Service, *config.Settings) {
	t.Helper()
	return newLoggedTestRoot(t, nil)
}

// newLoggedTestRoot writes the diagnostic channel to w when it is not nil
func newLoggedTestRoot(t *testing.T, w io.Writer) (*RootUI, *translate.Service, *config.Settings) {
	t.Helper()

	var logs *logging.Set
	if w != nil {
		logs = logging.NewSet(w, "info")
	}

	app := test.NewApp()
	window := test.NewWindow(nil)
	window.Resize(fyne.NewSize(800, 600))
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	settings.SetTickIntervalMS(config.MaxTickIntervalMS)

	var svcLogger *log.Logger
	if logs != nil {
		svcLogger = logs.Component("translate")
	}
	svc := translate.NewService(time.Hour, translate.DefaultProgressStep, svcLogger)
	t.Cleanup(svc.Close)

	return NewRootUI(window, app, svc, settings, logs), svc, settings
}

func dropFile(ui *RootUI, path string) {
	ui.onFilesDropped(fyne.NewPos(0, 0), []fyne.URI{storage.NewFileURI(path)})
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	if ui.uploadLabel.Text != "Click to upload or drag and drop" {
		t.Errorf("Unexpected upload prompt %q", ui.uploadLabel.Text)
	}
	if ui.startBtn.Visible() {
		t.Error("Start button should be hidden without a file")
	}
	if ui.progress.Visible() || ui.downloadBtn.Visible() || ui.errorBanner.Visible() {
		t.Error("Progress, download and error should be hidden initially")
	}
	if ui.loginBtn.Text != "Login / Register" {
		t.Errorf("Unexpected login button text %q", ui.loginBtn.Text)
	}
	if len(ui.featureCards) != 3 || ui.featureCards[0].card.Title != "50+ Languages" {
		t.Error("Expected the three feature cards")
	}
}

func TestRootUI_StartWithoutFileShowsError(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	ui.onStartTranslation()

	if !ui.errorBanner.Visible() {
		t.Fatal("Expected error banner to be visible")
	}
	if ui.errorLabel.Text != "Please upload a file before starting translation." {
		t.Errorf("Unexpected error text %q", ui.errorLabel.Text)
	}
	if state := svc.State(); state.Translating || state.Translated || state.Progress != 0 {
		t.Errorf("Expected no other state change, got %+v", state)
	}
}

func TestRootUI_UploadShowsFileName(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	dropFile(ui, "/tmp/doc.pdf")

	if ui.uploadLabel.Text != "doc.pdf" {
		t.Errorf("Expected file name in upload label, got %q", ui.uploadLabel.Text)
	}
	if !ui.startBtn.Visible() || ui.startBtn.Disabled() {
		t.Error("Expected enabled start button after upload")
	}
	if ui.startBtn.Text != "Start Translation" {
		t.Errorf("Unexpected start button text %q", ui.startBtn.Text)
	}
}

func TestRootUI_UploadErrorAndCancel(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	// Cancelled picker changes nothing
	ui.onFilePicked(nil, nil)
	if svc.State().File != nil || ui.errorBanner.Visible() {
		t.Error("Expected no change after cancelled picker")
	}

	ui.onFilePicked(nil, errors.New("permission denied"))
	if ui.errorLabel.Text != model.MsgUploadFailed {
		t.Errorf("Expected upload error, got %q", ui.errorLabel.Text)
	}

	// Next successful upload clears the error
	dropFile(ui, "/tmp/doc.pdf")
	if ui.errorBanner.Visible() {
		t.Error("Expected error cleared after upload")
	}
}

func TestRootUI_TranslationFlow(t *testing.T) {
	ui, svc, settings := newTestRoot(t)
	settings.SetTickIntervalMS(config.MinTickIntervalMS)

	dropFile(ui, "/tmp/doc.pdf")
	test.Tap(ui.startBtn)

	if !svc.State().Translating {
		t.Fatal("Expected translation to start")
	}
	if !ui.progress.Visible() {
		t.Error("Expected progress panel while translating")
	}
	if !ui.startBtn.Disabled() || ui.startBtn.Text != "Translating..." {
		t.Errorf("Expected disabled 'Translating...' button, got %q disabled=%v", ui.startBtn.Text, ui.startBtn.Disabled())
	}

	maxAttempts := 100
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if svc.State().Translated {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	state := svc.State()
	if !state.Translated || state.Progress != 100 {
		t.Fatalf("Expected completed translation, got %+v", state)
	}
	if !ui.downloadBtn.Visible() {
		t.Error("Expected download button after translation")
	}
	if ui.startBtn.Visible() || ui.progress.Visible() {
		t.Error("Expected start button and progress hidden after translation")
	}

	test.Tap(ui.downloadBtn)
	if svc.State().HasError() {
		t.Errorf("Expected download acknowledgment without error, got %q", svc.State().Error)
	}
}

func TestRootUI_LoginModal(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	ui.onStartTranslation() // leaves an error in the slot
	test.Tap(ui.loginBtn)

	if !ui.loginDialog.Visible() {
		t.Fatal("Expected login modal to be visible")
	}
	if ui.errorBanner.Visible() {
		t.Error("Expected error cleared when opening login")
	}

	test.Tap(ui.loginDialog.closeBtn)
	if ui.loginDialog.Visible() {
		t.Error("Expected login modal hidden after close")
	}
	if svc.State().LoginVisible {
		t.Error("Expected service to record the modal as closed")
	}
}

func TestRootUI_RegisterSubmitKeepsModalOpen(t *testing.T) {
	var buf bytes.Buffer
	ui, svc, _ := newLoggedTestRoot(t, &buf)

	test.Tap(ui.loginBtn)
	d := ui.loginDialog
	test.Tap(d.switchBtn)

	d.nameEntry.SetText("Ann")
	d.phoneEntry.SetText("+1 555 0100")
	d.emailEntry.SetText("ann@example.com")
	d.passwordEntry.SetText("s3cret")

	test.Tap(d.submitBtn)

	out := buf.String()
	if !strings.Contains(out, "Account form submitted") {
		t.Errorf("Expected submission recorded by the home page, got %q", out)
	}
	if strings.Contains(out, "s3cret") {
		t.Error("Plaintext password must not reach the log")
	}
	if !d.Visible() || !svc.State().LoginVisible {
		t.Error("Expected modal to stay open after submit")
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, settings := newTestRoot(t)

	ui.onLanguageChange("ru")

	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language saved as 'ru', got %s", settings.GetLanguage())
	}
	if ui.loginBtn.Text != "Вход / Регистрация" {
		t.Errorf("Expected Russian login text, got %q", ui.loginBtn.Text)
	}
	if ui.uploadLabel.Text != "Нажмите, чтобы загрузить, или перетащите файл" {
		t.Errorf("Expected Russian upload prompt, got %q", ui.uploadLabel.Text)
	}
}

func TestRootUI_LocalizedErrorBanner(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.onLanguageChange("pt")
	ui.onStartTranslation()

	if ui.errorLabel.Text != "Envie um arquivo antes de iniciar a tradução." {
		t.Errorf("Expected Portuguese error, got %q", ui.errorLabel.Text)
	}
}

func TestRootUI_MobileMenu(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	svc.ToggleMobileMenu()
	if !ui.mobileMenu.Container.Visible() {
		t.Fatal("Expected mobile menu visible")
	}

	// Opening login from the drawer closes the drawer
	test.Tap(ui.mobileMenu.LoginBtn)
	if ui.mobileMenu.Container.Visible() {
		t.Error("Expected mobile menu closed after choosing login")
	}
	if !ui.loginDialog.Visible() {
		t.Error("Expected login modal opened from the mobile menu")
	}
}

func TestRootUI_ApplySettings(t *testing.T) {
	var buf bytes.Buffer
	ui, svc, settings := newLoggedTestRoot(t, &buf)

	settings.SetLanguage("pt")
	settings.SetLogLevel("debug")
	ui.applySettings()

	if ui.localization.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language 'pt', got %s", ui.localization.GetCurrentLanguage())
	}
	if ui.startBtn.Visible() {
		t.Error("Expected state-dependent widgets re-rendered unchanged")
	}

	buf.Reset()
	svc.Upload()
	ui.loginDialog.form.ToggleMode()

	out := buf.String()
	if !strings.Contains(out, "Upload called with empty selection") {
		t.Errorf("Expected translate debug record after switching to debug, got %q", out)
	}
	if !strings.Contains(out, "Account form mode changed") {
		t.Errorf("Expected account debug record after switching to debug, got %q", out)
	}

	settings.SetLogLevel("error")
	ui.applySettings()
	buf.Reset()
	svc.Upload()
	if buf.Len() != 0 {
		t.Errorf("Expected debug filtered again at error level, got %q", buf.String())
	}
}

func TestRootUI_DismissErrorBanner(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	ui.onStartTranslation()
	if !ui.errorBanner.Visible() {
		t.Fatal("Expected error banner to be visible")
	}

	svc.ClearError()
	if ui.errorBanner.Visible() {
		t.Error("Expected error banner hidden after dismissal")
	}
}
