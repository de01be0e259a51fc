package exceptions

import (
	"errors"
	"fmt"
	"shrm-web/internal/pkg/constvars"
)

// ErrorKind classifies a failed backend API call.
type ErrorKind string

const (
	KindNetwork  ErrorKind = "network"
	KindNotFound ErrorKind = "not_found"
	KindServer   ErrorKind = "server"
	KindAuth     ErrorKind = "auth"
	KindGeneric  ErrorKind = "generic"
)

// APIError is returned by the backend API client for every failed call.
// StatusCode is zero when no response was received.
type APIError struct {
	Kind          ErrorKind
	Method        string
	Path          string
	StatusCode    int
	ServerMessage string
	Timeout       bool
	RedirectTo    string
	Err           error
}

func (e *APIError) Error() string {
	var message string
	switch e.Kind {
	case KindNetwork:
		if e.Timeout {
			message = fmt.Sprintf(constvars.ErrDevAPITimeout, e.Method, e.Path)
		} else {
			message = fmt.Sprintf(constvars.ErrDevAPINetwork, e.Method, e.Path)
		}
	case KindAuth:
		message = fmt.Sprintf(constvars.ErrDevAPIUnauthorized, e.Method, e.Path)
	case KindNotFound:
		message = fmt.Sprintf(constvars.ErrDevAPINotFound, e.Method, e.Path)
	case KindServer:
		message = fmt.Sprintf(constvars.ErrDevAPIServer, e.Method, e.Path, e.StatusCode)
	default:
		message = fmt.Sprintf(constvars.ErrDevAPIClient, e.Method, e.Path, e.StatusCode)
	}
	if e.ServerMessage != "" {
		message = fmt.Sprintf("%s: %s", message, e.ServerMessage)
	}
	if e.Err != nil {
		message = fmt.Sprintf("%s: %s", message, e.Err.Error())
	}
	return message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrAPINetwork reports a call that never received a response.
func ErrAPINetwork(err error, method, path string, timeout bool) *APIError {
	return &APIError{
		Kind:    KindNetwork,
		Method:  method,
		Path:    path,
		Timeout: timeout,
		Err:     err,
	}
}

// ErrAPIResponse classifies a non-2xx response by status code.
func ErrAPIResponse(method, path string, statusCode int, serverMessage string) *APIError {
	apiErr := &APIError{
		Method:        method,
		Path:          path,
		StatusCode:    statusCode,
		ServerMessage: serverMessage,
	}
	switch {
	case statusCode == constvars.StatusUnauthorized:
		apiErr.Kind = KindAuth
		apiErr.RedirectTo = constvars.RouteLogin
	case statusCode >= constvars.StatusInternalServerError:
		apiErr.Kind = KindServer
	case statusCode == constvars.StatusNotFound:
		apiErr.Kind = KindNotFound
	default:
		apiErr.Kind = KindGeneric
	}
	return apiErr
}

// ErrAPIIncompleteResponse reports a 2xx response that lacks data the website needs.
func ErrAPIIncompleteResponse(method, path, detail string) *APIError {
	return &APIError{
		Kind:       KindGeneric,
		Method:     method,
		Path:       path,
		StatusCode: constvars.StatusOK,
		Err:        errors.New(detail),
	}
}

// ErrAPIDecodeResponse reports a 2xx response whose body could not be decoded.
func ErrAPIDecodeResponse(err error, method, path string, statusCode int) *APIError {
	return &APIError{
		Kind:       KindGeneric,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Err:        fmt.Errorf(constvars.ErrDevAPIDecodeResponse+": %w", method, path, err),
	}
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindAuth
}

func IsNetworkError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindNetwork
}
