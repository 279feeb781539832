package account

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/translateai/translateai-desktop/internal/logging"
	"github.com/translateai/translateai-desktop/internal/model"
)

// RedactedPassword is logged when the password could not be hashed
const RedactedPassword = "[redacted]"

// Submission is the record written to the diagnostic log on submit
type Submission struct {
	ID           string
	Mode         model.LoginMode
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	SubmittedAt  time.Time
}

// Form holds the state of the login/register modal
type Form struct {
	mu           sync.Mutex
	mode         model.LoginMode
	creds        model.Credentials
	showPassword bool
	hashCost     int

	onClose func(model.CloseReason)
	log     *log.Logger
}

// NewForm creates a form in login mode. onClose is called when the user dismisses the form.
func NewForm(logger *log.Logger, onClose func(model.CloseReason)) *Form {
	return &Form{
		mode:     model.LoginModeLogin,
		hashCost: bcrypt.DefaultCost,
		onClose:  onClose,
		log:      logging.OrDiscard(logger),
	}
}

// Mode returns the current form mode
func (f *Form) Mode() model.LoginMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// ToggleMode switches between login and register
func (f *Form) ToggleMode() model.LoginMode {
	f.mu.Lock()
	f.mode = f.mode.Toggle()
	mode := f.mode
	f.mu.Unlock()

	f.log.Debug("Account form mode changed", "mode", mode)
	return mode
}

// PasswordVisible reports whether the password is shown in clear text
func (f *Form) PasswordVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.showPassword
}

// TogglePasswordVisibility flips password visibility; display only
func (f *Form) TogglePasswordVisibility() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showPassword = !f.showPassword
	return f.showPassword
}

// SetEmail sets the email field
func (f *Form) SetEmail(v string) { f.update(func(c *model.Credentials) { c.Email = v }) }

// SetPassword sets the password field
func (f *Form) SetPassword(v string) { f.update(func(c *model.Credentials) { c.Password = v }) }

// SetName sets the name field (register only)
func (f *Form) SetName(v string) { f.update(func(c *model.Credentials) { c.Name = v }) }

// SetPhone sets the phone field (register only)
func (f *Form) SetPhone(v string) { f.update(func(c *model.Credentials) { c.Phone = v }) }

func (f *Form) update(apply func(*model.Credentials)) {
	f.mu.Lock()
	apply(&f.creds)
	f.mu.Unlock()
}

// Credentials returns a copy of the current field values
func (f *Form) Credentials() model.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creds
}

// Validate checks the fields required by the current mode
func (f *Form) Validate() error {
	f.mu.Lock()
	mode, creds := f.mode, f.creds
	f.mu.Unlock()

	return creds.Validate(mode)
}

// MissingFields names the required fields that are still blank
func (f *Form) MissingFields() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creds.MissingFields(f.mode)
}

// Submit validates the form and writes the values to the diagnostic log.
// The form stays open and nothing is stored.
func (f *Form) Submit() (Submission, error) {
	f.mu.Lock()
	mode, creds, cost := f.mode, f.creds, f.hashCost
	f.mu.Unlock()

	if err := creds.Validate(mode); err != nil {
		f.log.Warn("Account form incomplete", "mode", mode, "missing", creds.MissingFields(mode))
		return Submission{}, fmt.Errorf("submit %s form: %w", mode, err)
	}

	sub := Submission{
		ID:           uuid.NewString(),
		Mode:         mode,
		Email:        creds.Email,
		PasswordHash: hashPassword(creds.Password, cost, f.log),
		SubmittedAt:  time.Now(),
	}
	if mode.IsRegister() {
		sub.Name = creds.Name
		sub.Phone = creds.Phone
	}

	f.log.Info(mode.String(),
		"id", sub.ID,
		"email", sub.Email,
		"name", sub.Name,
		"phone", sub.Phone,
		"password", sub.PasswordHash,
	)
	return sub, nil
}

// Close returns the form to an empty login form and tells the parent the user dismissed it
func (f *Form) Close() {
	f.mu.Lock()
	f.mode = model.LoginModeLogin
	f.creds = model.Credentials{}
	f.showPassword = false
	onClose := f.onClose
	f.mu.Unlock()

	if onClose != nil {
		onClose(model.CloseReasonCancelled)
	}
}

// hashPassword returns a bcrypt hash of password, or RedactedPassword if hashing fails
func hashPassword(password string, cost int, logger *log.Logger) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		logger.Warn("Could not hash password for diagnostics", "err", err)
		return RedactedPassword
	}
	return string(hash)
}
