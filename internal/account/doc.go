package account

// Package account implements the login/registration form state: mode and
// password-visibility toggles, required-field validation, and submission to
// the diagnostic log. Nothing is sent over the network or persisted.
