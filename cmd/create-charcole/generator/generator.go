package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charcoles/charcole/cmd/create-charcole/generator/templates"
	"github.com/charcoles/charcole/ecode"
	"github.com/charcoles/charcole/logging/logger"
	"github.com/charcoles/charcole/utils"
	"github.com/charcoles/charcole/validation/validator"
)

// ErrTargetExists is returned when the project directory already exists.
var ErrTargetExists = errors.New(ecode.AlreadyExist("target directory"))

// Result describes a generated project.
type Result struct {
	Path           string
	PackageManager string
	Manifest       Manifest
	Warnings       []error
	EnvWritten     bool
	GitInitialized bool
	Installed      bool
}

// Generate creates a project from the embedded templates.
func Generate(ctx context.Context, opts *Options) (*Result, error) {
	return GenerateFrom(ctx, templates.FS, opts)
}

// GenerateFrom creates a project from the language trees in fsys. Steps after
// the manifest is written only warn on failure; nothing is rolled back.
func GenerateFrom(ctx context.Context, fsys fs.FS, opts *Options) (*Result, error) {
	if err := validator.Default().Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logger.StdLogger()
	}

	// Determine output path
	if opts.OutputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		opts.OutputPath = cwd
	}
	target := filepath.Join(opts.OutputPath, opts.Name)
	if err := checkTarget(target, opts.Force); err != nil {
		return nil, err
	}

	res := &Result{Path: target}
	log = log.WithField("project", opts.Name)

	data := templates.Data{
		Name:     opts.Name,
		Language: opts.Language,
		Auth:     opts.Features.Auth,
		Swagger:  opts.Features.Swagger,
	}
	if err := CopyTemplate(fsys, opts.Language, target, data); err != nil {
		return nil, err
	}
	if err := Cleanup(target, opts.Features); err != nil {
		return nil, err
	}
	log.WithField("path", target).Debug("template copied")

	m, warnings, err := BuildManifest(fsys, opts.Language, opts.Name, opts.Features)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		if opts.Strict {
			return nil, fmt.Errorf("manifest fragment: %w", w)
		}
		log.WithError(w).Warn("skipping module manifest")
	}
	res.Warnings = append(res.Warnings, warnings...)
	if err := WriteManifest(filepath.Join(target, "package.json"), m); err != nil {
		return nil, err
	}
	res.Manifest = m

	written, err := WriteEnv(target, opts.Name, opts.Features)
	if err != nil {
		log.WithError(err).Warn("failed to create .env")
		res.Warnings = append(res.Warnings, err)
	}
	res.EnvWritten = written

	if opts.Git {
		if err := InitGit(ctx, target); err != nil {
			log.WithError(err).Warn("git initialization skipped")
			res.Warnings = append(res.Warnings, err)
		} else {
			res.GitInitialized = true
		}
	}

	res.PackageManager = opts.PackageManager
	if res.PackageManager == "" {
		res.PackageManager = DetectPackageManager()
	}
	if opts.Install {
		stdout, stderr := opts.Stdout, opts.Stderr
		if stdout == nil {
			stdout = os.Stdout
		}
		if stderr == nil {
			stderr = os.Stderr
		}
		log.WithField("package_manager", res.PackageManager).Info("installing dependencies")
		if err := Install(ctx, target, res.PackageManager, stdout, stderr); err != nil {
			log.WithError(err).Warnf("dependency installation failed, run '%s install' in %s", res.PackageManager, target)
			res.Warnings = append(res.Warnings, err)
		} else {
			res.Installed = true
		}
	}

	return res, nil
}

// checkTarget allows a missing target, or an empty one when force is set.
func checkTarget(target string, force bool) error {
	exists, err := utils.PathExists(target)
	if err != nil {
		return fmt.Errorf("error checking existence: %w", err)
	}
	if !exists {
		return nil
	}
	if force && utils.DirExists(target) {
		if empty, err := utils.IsEmptyDir(target); err == nil && empty {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTargetExists, target)
}
