package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromEnv_Defaults(t *testing.T) {
	opts, err := OptionsFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, opts.Title)
	assert.Equal(t, DefaultVersion, opts.Version)
	assert.Equal(t, DefaultPath, opts.Path)
	require.NotNil(t, opts.IncludeCommonResponses)
	assert.True(t, *opts.IncludeCommonResponses)
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("SWAGGER_TITLE", "Orders")
	t.Setenv("SWAGGER_PATH", "/docs")
	t.Setenv("SWAGGER_SERVERS", "http://localhost:3000,https://api.example.com")
	t.Setenv("SWAGGER_APIS", "src/**/*.ts")
	t.Setenv("SWAGGER_INCLUDE_COMMON_RESPONSES", "false")

	opts, err := OptionsFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "Orders", opts.Title)
	assert.Equal(t, "/docs", opts.Path)
	assert.Equal(t, []string{"http://localhost:3000", "https://api.example.com"}, opts.Servers)
	assert.Equal(t, []string{"src/**/*.ts"}, opts.APIs)
	assert.False(t, *opts.IncludeCommonResponses)
}

func TestOptionsFromEnv_BadBool(t *testing.T) {
	t.Setenv("SWAGGER_INCLUDE_COMMON_RESPONSES", "maybe")
	_, err := OptionsFromEnv()
	assert.Error(t, err)
}

func TestOptions_WithDefaults(t *testing.T) {
	o := Options{Title: "Mine"}.withDefaults()
	assert.Equal(t, "Mine", o.Title)
	assert.Equal(t, DefaultPath, o.Path)
	assert.True(t, *o.IncludeCommonResponses)
	assert.Equal(t, ".", o.BaseDir)

	assert.Error(t, Options{Path: "docs"}.withDefaults().validate())
}
