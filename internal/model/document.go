package model

import (
	"strings"
	"time"
)

// Progress bounds
const (
	MinProgress = 0
	MaxProgress = 100
)

// SelectedFile is the document picked by the user. Only the name is shown;
// the content is never read.
type SelectedFile struct {
	Name       string    // display name, e.g. "doc.pdf"
	URI        string    // source URI as reported by the file picker
	SelectedAt time.Time // when the file was picked
}

// Extension returns the lower-cased extension including the dot, or "" if none
func (f *SelectedFile) Extension() string {
	if f == nil {
		return ""
	}
	idx := strings.LastIndex(f.Name, ".")
	if idx <= 0 || idx == len(f.Name)-1 {
		return ""
	}
	return strings.ToLower(f.Name[idx:])
}

// HomeState is a snapshot of everything the home page renders
type HomeState struct {
	File           *SelectedFile
	Progress       int // 0 to 100
	Translating    bool
	Translated     bool
	Error          string // last user-facing error, empty if none
	LoginVisible   bool
	MobileMenuOpen bool
	SessionID      string // id of the current or last translation session
	Revision       uint64 // increases with every published change
}

// Phase derives the state machine position from the flags
func (hs HomeState) Phase() TranslationState {
	switch {
	case hs.Translating:
		return StateTranslating
	case hs.Translated:
		return StateTranslated
	case hs.File != nil:
		return StateUploaded
	default:
		return StateIdle
	}
}

// HasError reports whether the error slot is set
func (hs HomeState) HasError() bool {
	return hs.Error != ""
}

// FileLabel returns the file name, or fallback when nothing is selected
func (hs HomeState) FileLabel(fallback string) string {
	if hs.File == nil || hs.File.Name == "" {
		return fallback
	}
	return hs.File.Name
}

// ShowStartButton mirrors the page rule: a file is chosen and no download is ready yet
func (hs HomeState) ShowStartButton() bool {
	return hs.File != nil && !hs.Translated
}
