package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrGitNotFound is returned when git is not on PATH.
var ErrGitNotFound = errors.New("git not found in PATH")

// InitialCommitMessage is used for the commit made in a new project.
const InitialCommitMessage = "Initial commit from create-charcole"

// InitGit creates a repository in dir and commits the generated files.
func InitGit(ctx context.Context, dir string) error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", InitialCommitMessage},
	}
	for _, args := range steps {
		var stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = dir
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
		}
	}
	return nil
}

// DetectPackageManager picks the package manager that launched the CLI from
// npm_config_user_agent, falling back to npm.
func DetectPackageManager() string {
	agent := os.Getenv("npm_config_user_agent")
	for _, pm := range []string{"pnpm", "yarn", "bun"} {
		if strings.HasPrefix(agent, pm+"/") {
			return pm
		}
	}
	return "npm"
}

// Install runs "<pm> install" in dir with its output streamed to stdout and stderr.
func Install(ctx context.Context, dir, pm string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, pm, "install")
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s install: %w", pm, err)
	}
	return nil
}
