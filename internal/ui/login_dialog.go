package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/translateai/translateai-desktop/internal/account"
	"github.com/translateai/translateai-desktop/internal/model"
)

// LoginDialog renders an account.Form as a modal pop-up over the window
type LoginDialog struct {
	window       fyne.Window
	form         *account.Form
	localization *Localization
	popup        *widget.PopUp

	// UI components
	titleLabel    *widget.Label
	nameLabel     *widget.Label
	phoneLabel    *widget.Label
	emailLabel    *widget.Label
	passwordLabel *widget.Label
	registerRows  *fyne.Container
	nameEntry     *widget.Entry
	phoneEntry    *widget.Entry
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	revealBtn     *widget.Button
	submitBtn     *widget.Button
	switchBtn     *widget.Button
	closeBtn      *widget.Button
	feedbackLabel *widget.Label

	onSubmitted func(account.Submission)
}

// NewLoginDialog creates the modal; it is hidden until Show is called
func NewLoginDialog(window fyne.Window, localization *Localization, form *account.Form) *LoginDialog {
	d := &LoginDialog{
		window:       window,
		form:         form,
		localization: localization,
	}
	d.createUI()
	d.refresh()
	return d
}

// SetSubmittedCallback is called after every successful submission
func (d *LoginDialog) SetSubmittedCallback(callback func(account.Submission)) {
	d.onSubmitted = callback
}

// createUI builds the form widgets
func (d *LoginDialog) createUI() {
	d.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	d.titleLabel.SizeName = theme.SizeNameHeadingText

	d.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), d.onClose)
	d.closeBtn.Importance = widget.LowImportance

	d.nameLabel = widget.NewLabel("")
	d.nameEntry = widget.NewEntry()
	d.nameEntry.OnChanged = d.form.SetName

	d.phoneLabel = widget.NewLabel("")
	d.phoneEntry = widget.NewEntry()
	d.phoneEntry.OnChanged = d.form.SetPhone

	d.registerRows = container.NewVBox(d.nameLabel, d.nameEntry, d.phoneLabel, d.phoneEntry)

	d.emailLabel = widget.NewLabel("")
	d.emailEntry = widget.NewEntry()
	d.emailEntry.SetPlaceHolder("name@example.com")
	d.emailEntry.OnChanged = d.form.SetEmail
	d.emailEntry.OnSubmitted = func(string) { d.onSubmit() }

	d.passwordLabel = widget.NewLabel("")
	d.passwordEntry = widget.NewEntry()
	d.passwordEntry.Password = true
	d.passwordEntry.OnChanged = d.form.SetPassword
	d.passwordEntry.OnSubmitted = func(string) { d.onSubmit() }

	d.revealBtn = widget.NewButtonWithIcon("", theme.VisibilityIcon(), d.onTogglePassword)
	d.revealBtn.Importance = widget.LowImportance
	passwordRow := container.NewBorder(nil, nil, nil, d.revealBtn, d.passwordEntry)

	d.feedbackLabel = widget.NewLabel("")
	d.feedbackLabel.Importance = widget.DangerImportance
	d.feedbackLabel.Wrapping = fyne.TextWrapWord
	d.feedbackLabel.Hide()

	d.submitBtn = widget.NewButton("", d.onSubmit)
	d.submitBtn.Importance = widget.HighImportance

	d.switchBtn = widget.NewButton("", d.onToggleMode)
	d.switchBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, d.closeBtn, d.titleLabel)
	content := container.NewVBox(
		header,
		d.registerRows,
		d.emailLabel, d.emailEntry,
		d.passwordLabel, passwordRow,
		d.feedbackLabel,
		d.submitBtn,
		d.switchBtn,
	)

	d.popup = widget.NewModalPopUp(container.NewPadded(content), d.window.Canvas())
}

// Show displays the modal
func (d *LoginDialog) Show() {
	if d.popup.Visible() {
		return
	}
	d.popup.Resize(fyne.NewSize(LoginDialogWidth, d.popup.MinSize().Height))
	d.popup.Show()
	d.window.Canvas().Focus(d.emailEntry)
}

// Hide removes the modal without notifying the form
func (d *LoginDialog) Hide() {
	if d.popup.Visible() {
		d.popup.Hide()
	}
}

// Visible reports whether the modal is shown
func (d *LoginDialog) Visible() bool {
	return d.popup.Visible()
}

// RefreshTexts re-renders labels after a language change
func (d *LoginDialog) RefreshTexts() {
	d.refresh()
}

// refresh renders labels and register-only rows for the current mode
func (d *LoginDialog) refresh() {
	mode := d.form.Mode()

	title := d.localization.GetText(KeyLogin)
	switchText := d.localization.GetText(KeyNeedAccount)
	if mode.IsRegister() {
		title = d.localization.GetText(KeyRegister)
		switchText = d.localization.GetText(KeyHaveAccount)
		d.registerRows.Show()
	} else {
		d.registerRows.Hide()
	}

	d.titleLabel.SetText(title)
	d.submitBtn.SetText(title)
	d.switchBtn.SetText(switchText)
	d.nameLabel.SetText(d.localization.GetText(KeyName))
	d.phoneLabel.SetText(d.localization.GetText(KeyPhone))
	d.emailLabel.SetText(d.localization.GetText(KeyEmail))
	d.passwordLabel.SetText(d.localization.GetText(KeyPassword))

	if d.popup != nil && d.popup.Visible() {
		d.popup.Resize(fyne.NewSize(LoginDialogWidth, d.popup.MinSize().Height))
	}
}

// onToggleMode switches between login and register
func (d *LoginDialog) onToggleMode() {
	d.form.ToggleMode()
	d.feedbackLabel.Hide()
	d.refresh()
}

// onTogglePassword flips password masking
func (d *LoginDialog) onTogglePassword() {
	visible := d.form.TogglePasswordVisibility()
	d.passwordEntry.Password = !visible
	if visible {
		d.revealBtn.SetIcon(theme.VisibilityOffIcon())
	} else {
		d.revealBtn.SetIcon(theme.VisibilityIcon())
	}
	d.passwordEntry.Refresh()
}

// onSubmit validates and logs the form; the modal stays open either way
func (d *LoginDialog) onSubmit() {
	sub, err := d.form.Submit()
	if err != nil {
		msg := d.localization.LocalizeError(model.UserMessage(err, model.ErrorKindValidation))
		if errors.Is(err, model.ErrMissingFields) {
			msg = d.localization.MissingFieldsMessage(d.form.MissingFields())
		}
		d.feedbackLabel.SetText(msg)
		d.feedbackLabel.Show()
		return
	}

	d.feedbackLabel.Hide()
	if d.onSubmitted != nil {
		d.onSubmitted(sub)
	}
}

// onClose discards the fields and lets the form notify the parent
func (d *LoginDialog) onClose() {
	d.form.Close()
	d.resetFields()
	d.refresh()
}

// resetFields clears the entries to match the form after Close
func (d *LoginDialog) resetFields() {
	for _, entry := range []*widget.Entry{d.nameEntry, d.phoneEntry, d.emailEntry, d.passwordEntry} {
		entry.SetText("")
	}
	d.passwordEntry.Password = !d.form.PasswordVisible()
	d.revealBtn.SetIcon(theme.VisibilityIcon())
	d.feedbackLabel.Hide()
}
