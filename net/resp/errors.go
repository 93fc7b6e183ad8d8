package resp

import (
	"net/http"

	"github.com/charcoles/charcole/ecode"
	"github.com/charcoles/charcole/validation/validator"
)

// BadRequest writes a 400 validation failure with per-field errors.
func BadRequest(w http.ResponseWriter, message string, errs validator.Errors) {
	if errs == nil {
		errs = validator.Errors{}
	}
	Fail(w, &Exception{Status: http.StatusBadRequest, Code: ecode.RequestErr, Message: message, Errors: errs})
}

// Unauthorized writes a 401 failure.
func Unauthorized(w http.ResponseWriter, message string) {
	Fail(w, &Exception{Status: http.StatusUnauthorized, Code: ecode.Unauthorized, Message: message})
}

// Forbidden writes a 403 failure.
func Forbidden(w http.ResponseWriter, message string) {
	Fail(w, &Exception{Status: http.StatusForbidden, Code: ecode.AccessDenied, Message: message})
}

// NotFound writes a 404 failure.
func NotFound(w http.ResponseWriter, message string) {
	Fail(w, &Exception{Status: http.StatusNotFound, Code: ecode.NotFound, Message: message})
}

// InternalError writes a 500 failure.
func InternalError(w http.ResponseWriter, message string) {
	Fail(w, &Exception{Status: http.StatusInternalServerError, Code: ecode.ServerErr, Message: message})
}
