// Package templates embeds the Express.js project trees the generator copies.
package templates

import "embed"

// FS holds one template tree per language, rooted at "ts" and "js".
//
//go:embed all:ts all:js
var FS embed.FS

// Languages lists the template roots available in FS.
var Languages = []string{"ts", "js"}
