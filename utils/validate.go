package utils

import (
	"regexp"

	"github.com/gosimple/slug"
)

var nameRegex = regexp.MustCompile(`^[a-z][a-z0-9._-]*$`)

// ValidateName validates a project name
func ValidateName(name string) bool {
	return len(name) <= 214 && nameRegex.MatchString(name)
}

// NormalizeName turns free text into a project name candidate.
// It returns an empty string when nothing usable is left.
func NormalizeName(input string) string {
	s := slug.Make(input)
	if !ValidateName(s) {
		return ""
	}
	return s
}
