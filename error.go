package filestation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrInvalidResponse    = errors.New("invalid JSON response")
	ErrMissingFileContent = errors.New("file content can't be nil")
	ErrNoCredentials      = errors.New("no username has been configured for login")
	ErrSessionExpired     = errors.New("session expired or not found")
)

// Error is returned when the server answers with an error object.
type Error struct {
	Code    int
	Api     string
	Message string
	Details json.RawMessage // "errors" array attached by multi-file operations
}

// NewError resolves code for api through the error tables.
func NewError(code int, api string) *Error {
	return &Error{Code: code, Api: api, Message: ErrorMessage(code, api)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (Error Code: %d)", e.Message, e.Code)
}

func (e *Error) Unwrap() error {
	if _, ok := familyErrors[e.Api][e.Code]; ok {
		// family specific meaning, not the common one
		return nil
	}
	switch e.Code {
	case 105, 407:
		return os.ErrPermission
	case 106, 107, 119:
		return ErrSessionExpired
	case 408:
		return fs.ErrNotExist
	case 414:
		return fs.ErrExist
	default:
		return nil
	}
}

// HttpError is returned for any non-2xx HTTP status.
type HttpError struct {
	Code   int
	Status string
	Body   []byte
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("HTTP request failed: %d %s", e.Code, e.Status)
}
