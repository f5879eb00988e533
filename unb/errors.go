package unb

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/unbclub/unb-go/pkg/api"
)

// APIError is the base error for every non-2xx platform response. The
// more specific kinds below wrap it, so
//
//	var apiErr *unb.APIError
//	errors.As(err, &apiErr)
//
// catches any platform failure regardless of kind.
type APIError struct {
	Status  int
	Message string
	Method  string
	Path    string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unb: %s %s: %s (status %d)", e.Method, e.Path, e.Message, e.Status)
	}
	return fmt.Sprintf("unb: %s %s: status %d", e.Method, e.Path, e.Status)
}

// NotFoundError reports a guild, user, or item the platform does not
// know.
type NotFoundError struct {
	APIError
}

func (e *NotFoundError) Unwrap() error { return &e.APIError }

// InvalidTokenError reports a token the platform rejected.
type InvalidTokenError struct {
	APIError
}

func (e *InvalidTokenError) Unwrap() error { return &e.APIError }

// ForbiddenError reports a valid token that lacks permission for the
// attempted operation.
type ForbiddenError struct {
	APIError
}

func (e *ForbiddenError) Unwrap() error { return &e.APIError }

// IdentifierError reports a value that cannot be used as an Identifier.
type IdentifierError struct {
	Value any
	Err   error
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("unb: cannot resolve %T to a snowflake id", e.Value)
}

func (e *IdentifierError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsInvalidToken reports whether err is an InvalidTokenError.
func IsInvalidToken(err error) bool {
	var target *InvalidTokenError
	return errors.As(err, &target)
}

// IsForbidden reports whether err is a ForbiddenError.
func IsForbidden(err error) bool {
	var target *ForbiddenError
	return errors.As(err, &target)
}

// checkResponse maps a platform response onto the error taxonomy. Every
// operation passes its response through here before decoding the body.
func checkResponse(resp *api.Response) error {
	if resp.Code >= 200 && resp.Code < 300 {
		return nil
	}

	base := APIError{
		Status:  resp.Code,
		Message: errorMessage(resp),
		Method:  resp.Method,
		Path:    resp.Path,
		Body:    resp.RawBody,
	}

	switch resp.Code {
	case http.StatusUnauthorized:
		return &InvalidTokenError{APIError: base}
	case http.StatusForbidden:
		return &ForbiddenError{APIError: base}
	case http.StatusNotFound:
		return &NotFoundError{APIError: base}
	}

	return &base
}

// errorMessage digs the platform's message out of an error body. Bodies
// that are not JSON objects yield an empty message.
func errorMessage(resp *api.Response) string {
	body, err := api.ParseJSON(resp.RawBody)
	if err != nil {
		return ""
	}

	msg, err := body.GetString("message")
	if err != nil {
		return ""
	}

	return msg
}
