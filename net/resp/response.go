package resp

import (
	"encoding/json"
	"net/http"

	"github.com/charcoles/charcole/ecode"
)

// Envelope is the body shape shared by every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Exception describes a failed request.
type Exception struct {
	Status  int    // HTTP status
	Code    int    // Business code
	Message string // Message
	Errors  any    // Validation errors
}

func (e *Exception) Error() string {
	return e.Message
}

// Success writes a 200 envelope carrying data.
func Success(w http.ResponseWriter, message string, data any) {
	WithStatusCode(w, http.StatusOK, message, data)
}

// Created writes a 201 envelope carrying data.
func Created(w http.ResponseWriter, message string, data any) {
	WithStatusCode(w, http.StatusCreated, message, data)
}

// WithStatusCode writes a success envelope with a custom status code.
// Statuses outside 2xx/3xx are written as failures.
func WithStatusCode(w http.ResponseWriter, statusCode int, message string, data any) {
	if statusCode < 200 || statusCode >= 400 {
		Fail(w, &Exception{Status: statusCode, Message: message, Errors: data})
		return
	}

	if message == "" {
		message = ecode.Text(ecode.OK)
	}

	writeJSON(w, statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail writes a failure envelope for r.
func Fail(w http.ResponseWriter, r *Exception) {
	status, body := buildFailureResponse(r)
	writeJSON(w, status, body)
}

// buildFailureResponse fills in defaults for a failure.
func buildFailureResponse(r *Exception) (int, Envelope) {
	if r == nil {
		r = &Exception{Code: ecode.ServerErr}
	}

	code := r.Code
	status := r.Status
	if status == 0 {
		if code == 0 {
			code = ecode.RequestErr
		}
		status = ecode.ToHTTPStatus(code)
	}

	message := r.Message
	if message == "" {
		if code == 0 {
			code = codeForStatus(status)
		}
		message = ecode.Text(code)
	}

	return status, Envelope{
		Success: false,
		Message: message,
		Errors:  r.Errors,
	}
}

func codeForStatus(status int) int {
	switch status {
	case http.StatusBadRequest:
		return ecode.RequestErr
	case http.StatusUnauthorized:
		return ecode.Unauthorized
	case http.StatusForbidden:
		return ecode.AccessDenied
	case http.StatusNotFound:
		return ecode.NotFound
	case http.StatusUnprocessableEntity:
		return ecode.ParamErr
	default:
		return ecode.ServerErr
	}
}

// writeJSON writes res as JSON with status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
