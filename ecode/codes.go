package ecode

import "net/http"

// Business codes carried alongside the HTTP status.
const (
	OK           = 0
	RequestErr   = -400
	ParamErr     = -422
	Unauthorized = -401
	AccessDenied = -403
	NotFound     = -404
	ServerErr    = -500
)

var texts = map[int]string{
	OK:           "Operation successful",
	RequestErr:   "Validation failed",
	ParamErr:     "Invalid parameters",
	Unauthorized: "Authentication required",
	AccessDenied: "Access forbidden",
	NotFound:     "Resource not found",
	ServerErr:    "Internal server error",
}

var statuses = map[int]int{
	OK:           http.StatusOK,
	RequestErr:   http.StatusBadRequest,
	ParamErr:     http.StatusUnprocessableEntity,
	Unauthorized: http.StatusUnauthorized,
	AccessDenied: http.StatusForbidden,
	NotFound:     http.StatusNotFound,
	ServerErr:    http.StatusInternalServerError,
}

// Text returns the default message for code.
func Text(code int) string {
	if t, ok := texts[code]; ok {
		return t
	}
	return texts[ServerErr]
}

// ToHTTPStatus maps a business code to its HTTP status.
func ToHTTPStatus(code int) int {
	if s, ok := statuses[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
