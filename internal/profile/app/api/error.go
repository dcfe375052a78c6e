package api

import (
	"fmt"
	"net/http"
)

const (
	StatusTextNetworkError    = "Network Error"
	StatusTextInvalidResponse = "Invalid Response"
)

type (
	// Error is a failed profile API call. StatusCode is 0 when no usable response was received.
	Error struct {
		StatusCode       int
		StatusText       string
		ValidationErrors []ValidationError
		Err              error
	}

	// ValidationError is a field level message returned by the server for rejected forms.
	ValidationError struct {
		Message  string `json:"msg"`
		Param    string `json:"param,omitempty"`
		Location string `json:"location,omitempty"`
	}
)

func NewNetworkError(err error) *Error {
	return &Error{StatusText: StatusTextNetworkError, Err: err}
}

func NewInvalidResponseError(err error) *Error {
	return &Error{StatusText: StatusTextInvalidResponse, Err: err}
}

func NewStatusError(code int, text string, validationErrors []ValidationError) *Error {
	if text == "" {
		text = http.StatusText(code)
	}

	return &Error{StatusCode: code, StatusText: text, ValidationErrors: validationErrors}
}

func (e *Error) Error() string {
	msg := e.StatusText
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%d %s", e.StatusCode, e.StatusText)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}

	return "profile api: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
