// Package resp writes the JSON response envelope used by generated services:
//
//	{"success": true,  "message": "...", "data": {...}}
//	{"success": false, "message": "...", "errors": [{"field": "...", "message": "..."}]}
//
// The same shapes are documented by the common responses of the swagger package.
//
//	resp.Success(w, "User fetched", user)
//	resp.BadRequest(w, "Validation failed", errs)
//	resp.NotFound(w, "")  // message defaults to ecode.Text(ecode.NotFound)
package resp
