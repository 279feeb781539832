package ui

// Package ui contains the Fyne-based desktop user interface. RootUI renders the
// home page from translate.Service snapshots; LoginDialog renders the
// account.Form as a modal pop-up. All UI strings are localized via Localization.
