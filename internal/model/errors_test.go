package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestUIError_Unwrap(t *testing.T) {
	err := NewUIError(ErrorKindValidation, MsgNoFile, ErrNoFile)

	if !errors.Is(err, ErrNoFile) {
		t.Error("Expected errors.Is to find ErrNoFile")
	}

	wrapped := fmt.Errorf("start translation: %w", err)
	var uiErr *UIError
	if !errors.As(wrapped, &uiErr) {
		t.Fatal("Expected errors.As to find *UIError through wrapping")
	}
	if uiErr.Message != MsgNoFile {
		t.Errorf("Expected message %q, got %q", MsgNoFile, uiErr.Message)
	}
}

func TestUIError_Error(t *testing.T) {
	err := NewUIError(ErrorKindDownload, MsgDownloadFailed, nil)
	expected := "DownloadError: " + MsgDownloadFailed
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err      error
		kind     ErrorKind
		expected string
	}{
		{nil, ErrorKindUpload, ""},
		{errors.New("disk on fire"), ErrorKindUpload, MsgUploadFailed},
		{errors.New("boom"), ErrorKindDownload, MsgDownloadFailed},
		{errors.New("boom"), ErrorKindValidation, MsgStartFailed},
		{NewUIError(ErrorKindValidation, MsgNoFile, ErrNoFile), ErrorKindUpload, MsgNoFile},
	}

	for _, test := range tests {
		if got := UserMessage(test.err, test.kind); got != test.expected {
			t.Errorf("UserMessage(%v, %s) = %q, expected %q", test.err, test.kind, got, test.expected)
		}
	}
}
