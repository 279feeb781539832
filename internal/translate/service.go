package translate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/translateai/translateai-desktop/internal/logging"
	"github.com/translateai/translateai-desktop/internal/model"
)

// Timer defaults
const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultProgressStep = 10
	SessionIDPrefix     = "session-"
)

// DownloadAcknowledgment is shown to the user when the translated document is "downloaded"
const DownloadAcknowledgment = "Downloading translated PDF..."

// Service handles the upload/translate/download flow
type Service struct {
	mu       sync.RWMutex
	state    model.HomeState
	interval time.Duration
	step     int

	// current timer session; cancel is nil when no timer runs
	cancel  context.CancelFunc
	running sync.WaitGroup

	onUpdate func(model.HomeState) // callback for UI updates
	log      *log.Logger

	// deliveryMu serializes callbacks; delivered is the newest revision handed out
	deliveryMu sync.Mutex
	delivered  uint64
}

// NewService creates a new translation service. Non-positive interval or step fall back to defaults.
func NewService(interval time.Duration, step int, logger *log.Logger) *Service {
	s := &Service{log: logging.OrDiscard(logger)}
	s.SetTiming(interval, step)
	return s
}

// SetUpdateCallback sets the callback function for state updates.
// The callback runs with delivery serialized and must not call back into the Service.
func (s *Service) SetUpdateCallback(callback func(model.HomeState)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetTiming configures interval and step; a running session keeps its timer
func (s *Service) SetTiming(interval time.Duration, step int) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if step <= 0 {
		step = DefaultProgressStep
	}
	if step > model.MaxProgress {
		step = model.MaxProgress
	}

	s.mu.Lock()
	s.interval = interval
	s.step = step
	s.mu.Unlock()
}

// State returns a snapshot of the current state
func (s *Service) State() model.HomeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Upload stores the first file and resets the flow to Uploaded.
// Any running timer is cancelled so stale ticks cannot touch the new file.
func (s *Service) Upload(files ...model.SelectedFile) {
	if len(files) == 0 {
		s.log.Debug("Upload called with empty selection, ignoring")
		return
	}

	file := files[0]
	if file.SelectedAt.IsZero() {
		file.SelectedAt = time.Now()
	}

	s.mu.Lock()
	wasTranslating := s.state.Translating
	s.stopTimerLocked()
	s.state.File = &file
	s.state.Translating = false
	s.state.Translated = false
	s.state.Progress = model.MinProgress
	s.state.Error = ""
	snapshot := s.publishLocked()
	s.mu.Unlock()

	s.log.Info("File uploaded", "name", file.Name, "uri", file.URI, "interrupted", wasTranslating)
	s.notifyUpdate(snapshot)
}

// UploadFailed records an upload failure in the error slot
func (s *Service) UploadFailed(err error) {
	s.log.Error("File upload error", "err", err)
	s.setError(model.UserMessage(err, model.ErrorKindUpload))
}

// StartTranslation begins a new progress session for the selected file
func (s *Service) StartTranslation() error {
	s.mu.Lock()
	if s.state.File == nil {
		s.state.Error = model.MsgNoFile
		snapshot := s.publishLocked()
		s.mu.Unlock()

		s.log.Warn("Translation requested without a file")
		s.notifyUpdate(snapshot)
		return model.NewUIError(model.ErrorKindValidation, model.MsgNoFile, model.ErrNoFile)
	}

	s.stopTimerLocked()

	ctx, cancel := context.WithCancel(context.Background())
	sessionID := generateSessionID()
	s.cancel = cancel
	s.state.SessionID = sessionID
	s.state.Translating = true
	s.state.Translated = false
	s.state.Progress = model.MinProgress
	s.state.Error = ""
	interval := s.interval
	fileName := s.state.File.Name
	snapshot := s.publishLocked()

	s.running.Add(1)
	go s.runTimer(ctx, sessionID, interval)
	s.mu.Unlock()

	s.log.Info("Translation started", "session", sessionID, "file", fileName, "interval", interval)
	s.notifyUpdate(snapshot)
	return nil
}

// runTimer ticks until the session completes or its context is cancelled
func (s *Service) runTimer(ctx context.Context, sessionID string, interval time.Duration) {
	defer s.running.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Progress timer cancelled", "session", sessionID)
			return
		case <-ticker.C:
			if done := s.advance(sessionID); done {
				return
			}
		}
	}
}

// advance applies one tick to the given session. It returns true when the
// session is finished or no longer current, meaning the timer should stop.
func (s *Service) advance(sessionID string) bool {
	s.mu.Lock()
	if sessionID != s.state.SessionID || !s.state.Translating {
		s.mu.Unlock()
		s.log.Debug("Ignoring stale tick", "session", sessionID)
		return true
	}

	progress := s.state.Progress + s.step
	if progress > model.MaxProgress {
		progress = model.MaxProgress
	}
	s.state.Progress = progress

	finished := progress == model.MaxProgress
	if finished {
		s.stopTimerLocked()
		s.state.Translating = false
		s.state.Translated = true
	}
	snapshot := s.publishLocked()
	s.mu.Unlock()

	if finished {
		s.log.Info("Translation completed", "session", sessionID)
	} else {
		s.log.Debug("Translation progress", "session", sessionID, "percent", progress)
	}
	s.notifyUpdate(snapshot)
	return finished
}

// Download acknowledges the download of a translated document. No bytes are produced.
func (s *Service) Download() (string, error) {
	s.mu.Lock()
	if !s.state.Translated {
		s.state.Error = model.MsgDownloadFailed
		snapshot := s.publishLocked()
		s.mu.Unlock()

		err := model.NewUIError(model.ErrorKindDownload, model.MsgDownloadFailed, model.ErrNotTranslated)
		s.log.Error("Download error", "err", err)
		s.notifyUpdate(snapshot)
		return "", err
	}
	s.state.Error = ""
	snapshot := s.publishLocked()
	s.mu.Unlock()

	s.log.Info(DownloadAcknowledgment, "file", snapshot.FileLabel(""), "session", snapshot.SessionID)
	s.notifyUpdate(snapshot)
	return DownloadAcknowledgment, nil
}

// DownloadFailed records a failure of the acknowledgment step
func (s *Service) DownloadFailed(err error) {
	s.log.Error("Download error", "err", err)
	s.setError(model.UserMessage(err, model.ErrorKindDownload))
}

// ClearError empties the error slot
func (s *Service) ClearError() {
	s.setError("")
}

// ToggleLogin opens or closes the login modal and clears the error slot
func (s *Service) ToggleLogin() {
	s.mu.Lock()
	s.state.LoginVisible = !s.state.LoginVisible
	s.state.Error = ""
	visible := s.state.LoginVisible
	snapshot := s.publishLocked()
	s.mu.Unlock()

	s.log.Debug("Login form toggled", "visible", visible)
	s.notifyUpdate(snapshot)
}

// OpenLogin shows the login modal
func (s *Service) OpenLogin() {
	s.setLoginVisible(true, "")
}

// CloseLogin hides the login modal; reason is recorded in the log
func (s *Service) CloseLogin(reason model.CloseReason) {
	s.setLoginVisible(false, reason)
}

func (s *Service) setLoginVisible(visible bool, reason model.CloseReason) {
	s.mu.Lock()
	s.state.LoginVisible = visible
	s.state.Error = ""
	snapshot := s.publishLocked()
	s.mu.Unlock()

	if visible {
		s.log.Debug("Login form opened")
	} else {
		s.log.Info("Login form closed", "reason", reason)
	}
	s.notifyUpdate(snapshot)
}

// ToggleMobileMenu flips the mobile navigation menu
func (s *Service) ToggleMobileMenu() {
	s.mu.Lock()
	s.state.MobileMenuOpen = !s.state.MobileMenuOpen
	snapshot := s.publishLocked()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
}

// Close cancels any running timer and waits for it to exit
func (s *Service) Close() {
	s.mu.Lock()
	wasTranslating := s.state.Translating
	s.stopTimerLocked()
	s.state.Translating = false
	s.mu.Unlock()

	s.running.Wait()
	if wasTranslating {
		s.log.Info("Translation interrupted by shutdown")
	}
}

// stopTimerLocked cancels the current timer session. Caller must hold s.mu.
func (s *Service) stopTimerLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Service) setError(msg string) {
	s.mu.Lock()
	s.state.Error = msg
	snapshot := s.publishLocked()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
}

// publishLocked bumps the revision and returns the new snapshot. Caller must hold s.mu.
func (s *Service) publishLocked() model.HomeState {
	s.state.Revision++
	return s.snapshotLocked()
}

// snapshotLocked copies the state. Caller must hold s.mu.
func (s *Service) snapshotLocked() model.HomeState {
	snapshot := s.state
	if s.state.File != nil {
		file := *s.state.File
		snapshot.File = &file
	}
	return snapshot
}

// notifyUpdate calls the update callback if set. Snapshots reach the callback
// in revision order; one that lost the race to a newer snapshot is dropped.
func (s *Service) notifyUpdate(state model.HomeState) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	s.deliveryMu.Lock()
	defer s.deliveryMu.Unlock()

	if state.Revision <= s.delivered {
		s.log.Debug("Dropping outdated snapshot", "revision", state.Revision, "delivered", s.delivered)
		return
	}
	s.delivered = state.Revision

	if callback != nil {
		callback(state)
	}
}

// IsNoFile reports whether err is the missing-file validation error
func IsNoFile(err error) bool {
	return errors.Is(err, model.ErrNoFile)
}

// generateSessionID generates a unique translation session ID
func generateSessionID() string {
	return fmt.Sprintf("%s%s", SessionIDPrefix, uuid.NewString())
}
