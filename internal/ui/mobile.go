package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific layout decisions
type MobileUI struct {
	app      fyne.App
	isMobile func() bool
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{
		app:      app,
		isMobile: func() bool { return fyne.CurrentDevice().IsMobile() },
	}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile()
}

// FeatureGrid lays feature cards out in columns on desktop and stacked on mobile
func (m *MobileUI) FeatureGrid(objects ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() {
		return container.NewVBox(objects...)
	}
	return container.NewAdaptiveGrid(FeatureColumns, objects...)
}

// CreateMenuButton creates the hamburger button shown instead of inline nav on mobile
func (m *MobileUI) CreateMenuButton(onTapped func()) *widget.Button {
	btn := widget.NewButtonWithIcon("", theme.MenuIcon(), onTapped)
	btn.Importance = widget.LowImportance

	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileRowButtonHeight))
	}
	return btn
}

// MobileMenu is the collapsible navigation drawer
type MobileMenu struct {
	Container   *fyne.Container
	LoginBtn    *widget.Button
	SettingsBtn *widget.Button
}

// NewMobileMenu builds the drawer with the login and settings actions. It starts hidden.
func (m *MobileUI) NewMobileMenu(loginText, settingsText string, onLogin, onSettings func()) *MobileMenu {
	loginBtn := widget.NewButton(loginText, onLogin)
	loginBtn.Importance = widget.HighImportance
	settingsBtn := widget.NewButtonWithIcon(settingsText, theme.SettingsIcon(), onSettings)

	menu := &MobileMenu{
		Container:   container.NewVBox(loginBtn, settingsBtn),
		LoginBtn:    loginBtn,
		SettingsBtn: settingsBtn,
	}
	menu.Container.Hide()
	return menu
}

// SetOpen shows or hides the drawer
func (mm *MobileMenu) SetOpen(open bool) {
	if open {
		mm.Container.Show()
	} else {
		mm.Container.Hide()
	}
}
