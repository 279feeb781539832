package translate

import (
	"time"

	"github.com/translateai/translateai-desktop/internal/model"
)

// Translator defines the interface for the home page state holder.
type Translator interface {
	SetUpdateCallback(func(model.HomeState))
	State() model.HomeState

	// Upload selects the first file; an empty list is ignored
	Upload(files ...model.SelectedFile)
	// UploadFailed records a file picker failure in the error slot
	UploadFailed(err error)
	StartTranslation() error
	Download() (string, error)
	// DownloadFailed records a failure of the acknowledgment step
	DownloadFailed(err error)
	ClearError()

	ToggleLogin()
	OpenLogin()
	CloseLogin(reason model.CloseReason)
	ToggleMobileMenu()

	// SetTiming configures the progress timer for the next session
	SetTiming(interval time.Duration, step int)

	// Close stops any running timer
	Close()
}
