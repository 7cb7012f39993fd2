package api

import (
	"errors"
	"fmt"
	"net/http"

	"cv-intake/internal/cv"
	"cv-intake/internal/storage"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	Code      int      `json:"code"`
	Message   string   `json:"message"`
	Detail    string   `json:"detail,omitempty"`
	Fields    []string `json:"fields,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

var (
	ErrBadRequest       = func(detail string) *APIError { return NewAPIError(http.StatusBadRequest, "Bad Request", detail) }
	ErrNotFound         = func(detail string) *APIError { return NewAPIError(http.StatusNotFound, "Not Found", detail) }
	ErrMethodNotAllowed = func(detail string) *APIError {
		return NewAPIError(http.StatusMethodNotAllowed, "Method Not Allowed", detail)
	}
	ErrUnprocessable = func(detail string) *APIError {
		return NewAPIError(http.StatusUnprocessableEntity, "Unprocessable Resume", detail)
	}
	ErrServiceUnavailable = func(detail string) *APIError {
		return NewAPIError(http.StatusServiceUnavailable, "Service Unavailable", detail)
	}
	ErrInternalServer = func(detail string) *APIError {
		return NewAPIError(http.StatusInternalServerError, "Internal Server Error", detail)
	}
)

func NewAPIError(code int, message, detail string) *APIError {
	return &APIError{Code: code, Message: message, Detail: detail}
}

func (e *APIError) WithRequestID(requestID string) *APIError {
	e.RequestID = requestID
	return e
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *APIError) StatusCode() int {
	return e.Code
}

// toAPIError maps domain errors onto HTTP responses.
func toAPIError(err error) *APIError {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, cv.ErrUnsupportedType):
		return ErrBadRequest("unsupported file type (supported: PDF, DOCX)")
	case errors.Is(err, cv.ErrDocumentUnavailable):
		return ErrNotFound("no resume on file; please upload one")
	case errors.Is(err, cv.ErrNoText):
		return ErrUnprocessable("no text could be read from the resume; upload a text-based PDF or DOCX, or fill the profile manually")
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound("record not found")
	}
	return ErrInternalServer("unexpected server error")
}
