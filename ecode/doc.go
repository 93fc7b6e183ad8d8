// Package ecode defines the business codes and default messages shared by the
// runtime response envelope (net/resp) and the documented response templates
// (swagger).
//
// # Codes
//
//	ecode.OK           //    0: success
//	ecode.RequestErr   // -400: validation failed
//	ecode.Unauthorized // -401: authentication required
//	ecode.AccessDenied // -403: access forbidden
//	ecode.NotFound     // -404: resource not found
//	ecode.ServerErr    // -500: internal server error
//
// # Messages
//
//	ecode.Text(ecode.NotFound)     // "Resource not found"
//	ecode.ToHTTPStatus(ecode.NotFound) // 404
//
// Field helpers build the per-field messages used in validation error lists:
//
//	ecode.FieldIsRequired("email") // "email required"
package ecode
