package swagger

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Defaults applied by Build when the option is empty.
const (
	DefaultPath    = "/api-docs"
	DefaultTitle   = "API Documentation"
	DefaultVersion = "1.0.0"
)

// Options describes the document assembled by Build.
type Options struct {
	Title       string
	Version     string
	Description string
	// Path is where the UI is mounted.
	Path    string
	Servers []string
	// Schemas are registered as components.schemas.
	Schemas map[string]Schema
	// IncludeCommonResponses defaults to true when nil.
	IncludeCommonResponses *bool
	// CustomResponses win over common responses with the same name.
	CustomResponses map[string]Response
	// APIs are glob patterns of source files scanned for @openapi comments.
	APIs []string
	// BaseDir anchors relative APIs patterns. Defaults to the working directory.
	BaseDir string

	Converter Converter
	Logger    logrus.FieldLogger
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.IncludeCommonResponses == nil {
		o.IncludeCommonResponses = Bool(true)
	}
	if o.BaseDir == "" {
		o.BaseDir = "."
	}
	return o
}

func (o Options) validate() error {
	if !strings.HasPrefix(o.Path, "/") {
		return fmt.Errorf("swagger path %q must start with /", o.Path)
	}
	if strings.Trim(o.Path, "/") == "" {
		return fmt.Errorf("swagger path %q must not be the root", o.Path)
	}
	return nil
}

type envOptions struct {
	Title                  string   `env:"TITLE" envDefault:"API Documentation"`
	Version                string   `env:"VERSION" envDefault:"1.0.0"`
	Description            string   `env:"DESCRIPTION"`
	Path                   string   `env:"PATH" envDefault:"/api-docs"`
	Servers                []string `env:"SERVERS" envSeparator:","`
	APIs                   []string `env:"APIS" envSeparator:","`
	IncludeCommonResponses bool     `env:"INCLUDE_COMMON_RESPONSES" envDefault:"true"`
}

// OptionsFromEnv reads SWAGGER_* environment variables.
func OptionsFromEnv() (Options, error) {
	var e envOptions
	if err := env.ParseWithOptions(&e, env.Options{Prefix: "SWAGGER_"}); err != nil {
		return Options{}, fmt.Errorf("parse swagger env: %w", err)
	}
	return Options{
		Title:                  e.Title,
		Version:                e.Version,
		Description:            e.Description,
		Path:                   e.Path,
		Servers:                e.Servers,
		APIs:                   e.APIs,
		IncludeCommonResponses: Bool(e.IncludeCommonResponses),
	}, nil
}
