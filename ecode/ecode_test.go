package ecode

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, "Resource not found", Text(NotFound))
	assert.Equal(t, Text(ServerErr), Text(12345))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, ToHTTPStatus(OK))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(RequestErr))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(Unauthorized))
	assert.Equal(t, http.StatusForbidden, ToHTTPStatus(AccessDenied))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(NotFound))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(-9999))
}

func TestFieldMessages(t *testing.T) {
	assert.Equal(t, "email required", FieldIsRequired("email"))
	assert.Equal(t, "required", FieldIsRequired())
	assert.Equal(t, "name is too short (min 3)", FieldTooShort("name", "3"))
	assert.Equal(t, "lang must be one of [ts js]", FieldNotOneOf("lang", "ts js"))
	assert.Equal(t, "target already exists", AlreadyExist("target"))
	assert.Equal(t, "template does not exist", NotExist("template"))
}
