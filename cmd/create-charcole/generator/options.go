package generator

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Optional module names under src/modules, in the order their manifest
// fragments are merged.
const (
	ModuleAuth    = "auth"
	ModuleSwagger = "swagger"
)

// Features is the set of optional modules selected for a project.
type Features struct {
	Auth    bool
	Swagger bool
}

// Enabled reports whether the named optional module is selected.
func (f Features) Enabled(module string) bool {
	switch module {
	case ModuleAuth:
		return f.Auth
	case ModuleSwagger:
		return f.Swagger
	}
	return false
}

// Selected returns the selected module names in merge order.
func (f Features) Selected() []string {
	var out []string
	for _, m := range optionalModules {
		if f.Enabled(m) {
			out = append(out, m)
		}
	}
	return out
}

var optionalModules = []string{ModuleAuth, ModuleSwagger}

func isOptionalModule(name string) bool {
	return name == ModuleAuth || name == ModuleSwagger
}

// Options defines generation options
type Options struct {
	Name           string   `json:"name" validate:"required,projectname"`
	Language       string   `json:"language" validate:"required,oneof=ts js"`
	Features       Features `json:"features"`
	OutputPath     string   `json:"output_path"` // Parent directory, defaults to the working directory
	PackageManager string   `json:"package_manager" validate:"omitempty,oneof=npm pnpm yarn bun"`
	Install        bool     `json:"install"`
	Git            bool     `json:"git"`
	Force          bool     `json:"force"`  // Allow an existing empty target directory
	Strict         bool     `json:"strict"` // Treat unreadable manifest fragments as fatal

	Stdout io.Writer          `json:"-"` // Install output, defaults to os.Stdout
	Stderr io.Writer          `json:"-"`
	Logger logrus.FieldLogger `json:"-"`
}

// DefaultOptions returns default options
func DefaultOptions() *Options {
	return &Options{
		Language: "ts",
		Install:  true,
		Git:      true,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}
