package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies user-facing failures. All kinds are recoverable.
type ErrorKind string

const (
	ErrorKindUpload     ErrorKind = "UploadError"
	ErrorKindValidation ErrorKind = "ValidationError"
	ErrorKindDownload   ErrorKind = "DownloadError"
)

// User-facing messages shown in the error banner
const (
	MsgUploadFailed   = "Error uploading file. Please try again."
	MsgNoFile         = "Please upload a file before starting translation."
	MsgStartFailed    = "Error starting translation. Please try again."
	MsgDownloadFailed = "Error downloading file. Please try again."
)

var (
	ErrNoFile        = errors.New("no file selected")
	ErrNotTranslated = errors.New("document is not translated yet")
	ErrMissingFields = errors.New("required fields missing")
)

// UIError carries a static message for the user and the underlying cause for the log
type UIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewUIError creates a UIError
func NewUIError(kind ErrorKind, message string, err error) *UIError {
	return &UIError{Kind: kind, Message: message, Err: err}
}

func (e *UIError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// UserMessage returns the banner text for err. Errors that are not UIErrors get
// the generic message for fallbackKind.
func UserMessage(err error, fallbackKind ErrorKind) string {
	if err == nil {
		return ""
	}
	var uiErr *UIError
	if errors.As(err, &uiErr) && uiErr.Message != "" {
		return uiErr.Message
	}
	switch fallbackKind {
	case ErrorKindUpload:
		return MsgUploadFailed
	case ErrorKindDownload:
		return MsgDownloadFailed
	default:
		return MsgStartFailed
	}
}
