package commands

import (
	"errors"
	"fmt"

	"github.com/charcoles/charcole/cmd/create-charcole/generator"
	"github.com/charcoles/charcole/cmd/create-charcole/generator/templates"
	"github.com/charcoles/charcole/logging/logger"
	"github.com/charcoles/charcole/utils"

	"github.com/spf13/cobra"
)

// DefaultProjectName is used when --yes is given without a name.
const DefaultProjectName = "charcole-app"

type createFlags struct {
	lang           string
	auth           bool
	swagger        bool
	yes            bool
	path           string
	packageManager string
	noInstall      bool
	noGit          bool
	strict         bool
	force          bool
}

func bindCreate(cmd *cobra.Command, s *session) {
	f := &createFlags{}

	cmd.Flags().StringVarP(&f.lang, "lang", "l", "", "template language (ts or js)")
	cmd.Flags().BoolVar(&f.auth, "auth", false, "include the JWT authentication module")
	cmd.Flags().BoolVar(&f.swagger, "swagger", false, "include Swagger API documentation")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "accept defaults without prompting")
	cmd.Flags().StringVarP(&f.path, "path", "p", "", "parent directory (defaults to current directory)")
	cmd.Flags().StringVar(&f.packageManager, "package-manager", "", "npm, pnpm, yarn or bun (detected when empty)")
	cmd.Flags().BoolVar(&f.noInstall, "no-install", false, "skip dependency installation")
	cmd.Flags().BoolVar(&f.noGit, "no-git", false, "skip git initialization")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail on unreadable module manifests")
	cmd.Flags().BoolVar(&f.force, "force", false, "allow an existing empty project directory")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args, s, f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSummary(out, opts)

		res, err := generator.Generate(cmd.Context(), opts)
		if err != nil {
			return err
		}
		printResult(out, res)
		return nil
	}
}

// resolveOptions merges flags, config defaults and prompt answers.
func resolveOptions(cmd *cobra.Command, args []string, s *session, f *createFlags) (*generator.Options, error) {
	out := cmd.OutOrStdout()
	p := newPrompter(cmd.InOrStdin(), out)
	defaults := s.cfg.Defaults

	if !f.yes {
		printBanner(out)
	}

	opts := generator.DefaultOptions()
	opts.Stdout = out
	opts.Stderr = cmd.ErrOrStderr()
	opts.Logger = s.log.WithContext(cmd.Context())

	// Project name
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	var err error
	if name == "" && !f.yes {
		if name, err = p.Ask("Project name:", DefaultProjectName); err != nil {
			return nil, err
		}
	}
	if name == "" {
		name = DefaultProjectName
	}
	if name, err = ensureValidName(p, name, f.yes); err != nil {
		return nil, err
	}
	opts.Name = name

	// Language
	switch {
	case cmd.Flags().Changed("lang"):
		opts.Language = f.lang
	case f.yes:
		opts.Language = defaults.Language
	default:
		if opts.Language, err = p.Choose("Language:", templates.Languages, defaults.Language); err != nil {
			return nil, err
		}
	}

	// Optional modules
	if opts.Features.Auth, err = feature(cmd, p, "auth", f.auth, f.yes, "Include JWT authentication?"); err != nil {
		return nil, err
	}
	if opts.Features.Swagger, err = feature(cmd, p, "swagger", f.swagger, f.yes, "Include Swagger API documentation?"); err != nil {
		return nil, err
	}

	opts.OutputPath = f.path
	opts.PackageManager = f.packageManager
	if opts.PackageManager == "" {
		opts.PackageManager = defaults.PackageManager
	}
	opts.Install = defaults.Install && !f.noInstall
	opts.Git = defaults.Git && !f.noGit
	opts.Strict = f.strict
	opts.Force = f.force

	fmt.Fprintln(out)
	return opts, nil
}

func feature(cmd *cobra.Command, p *prompter, flag string, value, yes bool, question string) (bool, error) {
	if cmd.Flags().Changed(flag) {
		return value, nil
	}
	if yes {
		return false, nil
	}
	return p.Confirm(question, false)
}

var errInvalidName = errors.New("invalid project name")

// ensureValidName offers the slug of an invalid name as the replacement.
func ensureValidName(p *prompter, name string, yes bool) (string, error) {
	for !utils.ValidateName(name) {
		suggestion := utils.NormalizeName(name)
		if yes || p.eof {
			if suggestion == "" {
				return "", fmt.Errorf("%w: %q", errInvalidName, name)
			}
			logger.StdLogger().WithField("name", name).Warnf("using %q as project name", suggestion)
			return suggestion, nil
		}
		fmt.Fprintln(p.w, styles.warn.Render(fmt.Sprintf("  %q is not a valid package name.", name)))
		answer, err := p.Ask("Project name:", suggestion)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return "", fmt.Errorf("%w: %q", errInvalidName, name)
		}
		name = answer
	}
	return name, nil
}
