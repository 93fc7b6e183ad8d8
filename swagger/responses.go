package swagger

import (
	"net/http"

	"github.com/charcoles/charcole/ecode"
)

// Response is an OpenAPI response object.
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType is an OpenAPI media type object.
type MediaType struct {
	Schema JSONSchema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Names of the common responses.
const (
	ResponseSuccess         = "Success"
	ResponseValidationError = "ValidationError"
	ResponseUnauthorized    = "Unauthorized"
	ResponseForbidden       = "Forbidden"
	ResponseNotFound        = "NotFound"
	ResponseInternalError   = "InternalError"
)

var impliedStatus = map[string]int{
	ResponseSuccess:         http.StatusOK,
	ResponseValidationError: http.StatusBadRequest,
	ResponseUnauthorized:    http.StatusUnauthorized,
	ResponseForbidden:       http.StatusForbidden,
	ResponseNotFound:        http.StatusNotFound,
	ResponseInternalError:   http.StatusInternalServerError,
}

// ImpliedStatus returns the HTTP status a common response is documented for.
// Success is also used for 201.
func ImpliedStatus(name string) (int, bool) {
	s, ok := impliedStatus[name]
	return s, ok
}

// CommonResponses returns the shared response envelopes. Every call builds a
// new map, so callers may modify the result freely.
func CommonResponses() map[string]Response {
	return map[string]Response{
		ResponseSuccess: jsonResponse("Successful operation", envelope(true, ecode.Text(ecode.OK), map[string]any{
			"data": map[string]any{"type": "object"},
		})),
		ResponseValidationError: jsonResponse("Validation error", envelope(false, ecode.Text(ecode.RequestErr), map[string]any{
			"errors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field":   map[string]any{"type": "string"},
						"message": map[string]any{"type": "string"},
					},
				},
			},
		})),
		ResponseUnauthorized:  jsonResponse("Unauthorized - authentication required", envelope(false, ecode.Text(ecode.Unauthorized), nil)),
		ResponseForbidden:     jsonResponse("Forbidden - insufficient permissions", envelope(false, ecode.Text(ecode.AccessDenied), nil)),
		ResponseNotFound:      jsonResponse("Resource not found", envelope(false, ecode.Text(ecode.NotFound), nil)),
		ResponseInternalError: jsonResponse("Internal server error", envelope(false, ecode.Text(ecode.ServerErr), nil)),
	}
}

func jsonResponse(description string, schema JSONSchema) Response {
	return Response{
		Description: description,
		Content:     map[string]MediaType{"application/json": {Schema: schema}},
	}
}

func envelope(success bool, message string, extra map[string]any) JSONSchema {
	props := map[string]any{
		"success": map[string]any{"type": "boolean", "example": success},
		"message": map[string]any{"type": "string", "example": message},
	}
	for k, v := range extra {
		props[k] = v
	}
	return JSONSchema{"type": "object", "properties": props}
}
