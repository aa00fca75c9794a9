package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// genericErrorMessage is the last-resort message when neither the server nor
// the transport produced anything usable.
const genericErrorMessage = "An unexpected error occurred"

// Kind classifies an API failure for callers that branch on failure class.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
)

// FieldError is one entry of a structured validation detail.
type FieldError struct {
	Loc  []any  `json:"loc,omitempty"`
	Msg  string `json:"msg"`
	Type string `json:"type,omitempty"`
}

// Error is the failure shape every API call returns. Exactly one of the
// server-side fields (StatusCode, Detail/Fields) or Err (transport failure)
// carries the cause.
type Error struct {
	StatusCode int
	Kind       Kind
	Detail     string       // server-supplied detail message, if any
	Fields     []FieldError // structured field errors, if the detail was a list
	Err        error        // underlying transport error for KindNetwork
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("api: %s (status %d)", e.Detail, e.StatusCode)
	case len(e.Fields) > 0:
		return fmt.Sprintf("api: %s (status %d)", joinFieldErrors(e.Fields), e.StatusCode)
	case e.Err != nil:
		return "api: " + e.Err.Error()
	case e.StatusCode != 0:
		return fmt.Sprintf("api: %s (status %d)", http.StatusText(e.StatusCode), e.StatusCode)
	default:
		return "api: " + genericErrorMessage
	}
}

// Unwrap exposes the transport error to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is a 401 that survived the refresh path.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// ErrorMessage reduces any error from this package to one human-readable
// string: the server's structured detail when present (field errors joined
// with a comma), then the transport error text, then a generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		if len(apiErr.Fields) > 0 {
			return joinFieldErrors(apiErr.Fields)
		}
		if apiErr.Err != nil {
			return apiErr.Err.Error()
		}
		return genericErrorMessage
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericErrorMessage
}

func joinFieldErrors(fields []FieldError) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Msg) == "" {
			continue
		}
		parts = append(parts, f.Msg)
	}
	if len(parts) == 0 {
		return genericErrorMessage
	}
	return strings.Join(parts, ", ")
}

// kindForStatus maps an HTTP status to a failure kind.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}

// errorBody is the wire shape of an error response. detail is either a plain
// string or a list of field errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// parseErrorBody fills Detail/Fields from a response body, tolerating bodies
// that are empty or not JSON at all.
func parseErrorBody(e *Error, body []byte) {
	if len(body) == 0 {
		return
	}

	var wrapper errorBody
	if err := json.Unmarshal(body, &wrapper); err != nil || len(wrapper.Detail) == 0 {
		return
	}

	var detail string
	if err := json.Unmarshal(wrapper.Detail, &detail); err == nil {
		e.Detail = detail
		return
	}

	var fields []FieldError
	if err := json.Unmarshal(wrapper.Detail, &fields); err == nil {
		e.Fields = fields
	}
}
