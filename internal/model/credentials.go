package model

import (
	"fmt"
	"strings"
)

// LoginMode selects which variant of the account form is shown
type LoginMode string

const (
	LoginModeLogin    LoginMode = "Login"
	LoginModeRegister LoginMode = "Register"
)

// String returns the string representation of LoginMode
func (m LoginMode) String() string {
	return string(m)
}

// Toggle returns the other mode
func (m LoginMode) Toggle() LoginMode {
	if m == LoginModeRegister {
		return LoginModeLogin
	}
	return LoginModeRegister
}

// IsRegister returns true for the registration variant
func (m LoginMode) IsRegister() bool {
	return m == LoginModeRegister
}

// CloseReason tells the parent why the account form went away
type CloseReason string

// CloseReasonCancelled means the user dismissed the form
const CloseReasonCancelled CloseReason = "cancelled"

// Credentials holds the account form fields
type Credentials struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// MissingFields returns the names of required fields left blank for the given mode.
// Email and password are always required; name and phone only when registering.
func (c Credentials) MissingFields(mode LoginMode) []string {
	var missing []string
	if mode.IsRegister() {
		if strings.TrimSpace(c.Name) == "" {
			missing = append(missing, "name")
		}
		if strings.TrimSpace(c.Phone) == "" {
			missing = append(missing, "phone")
		}
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

// Validate returns a ValidationError listing missing required fields, or nil
func (c Credentials) Validate(mode LoginMode) error {
	missing := c.MissingFields(mode)
	if len(missing) == 0 {
		return nil
	}
	return NewUIError(ErrorKindValidation,
		fmt.Sprintf("Please fill in: %s", strings.Join(missing, ", ")),
		fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", ")))
}
