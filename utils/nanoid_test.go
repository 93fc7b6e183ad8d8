package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanoString(t *testing.T) {
	a, err := NanoString(64)
	require.NoError(t, err)
	b, err := NanoString(64)
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-Za-z]+$`), a)
	assert.NotEqual(t, a, b)
}
