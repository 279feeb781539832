package model

// TranslationState represents where the home page is in the upload/translate flow
type TranslationState string

const (
	// StateIdle means no file has been selected yet
	StateIdle TranslationState = "Idle"

	// StateUploaded means a file is selected and translation has not started
	StateUploaded TranslationState = "Uploaded"

	// StateTranslating means the progress timer is running
	StateTranslating TranslationState = "Translating"

	// StateTranslated means progress reached 100 and the download is available
	StateTranslated TranslationState = "Translated"
)

// String returns the string representation of TranslationState
func (ts TranslationState) String() string {
	return string(ts)
}

// IsActive returns true while the progress timer is running
func (ts TranslationState) IsActive() bool {
	return ts == StateTranslating
}

// IsFinished returns true once a download is available
func (ts TranslationState) IsFinished() bool {
	return ts == StateTranslated
}

// CanStart returns true if a translation may be started from this state
func (ts TranslationState) CanStart() bool {
	return ts == StateUploaded || ts == StateTranslated
}
