package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NanoString returns a random alphanumeric string of length n.
func NanoString(n int) (string, error) {
	return gonanoid.Generate(alphabet, n)
}
