package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charcoles/charcole/utils"
)

// Values of JWT_SECRET that are treated as unset.
var placeholderSecrets = map[string]bool{
	"":                true,
	"changeme":        true,
	"change-me":       true,
	"secret":          true,
	"your-secret-key": true,
	"your_jwt_secret": true,
	"your-jwt-secret": true,
}

// WriteEnv creates dir/.env from dir/.env.example. APP_NAME is set when it is
// missing or empty and, with auth selected, a placeholder JWT_SECRET is
// replaced by a random one. It reports whether a .env file was written.
func WriteEnv(dir, name string, features Features) (bool, error) {
	example, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read .env.example: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(example), "\n"), "\n")
	lines = setEnv(lines, "APP_NAME", name, func(v string) bool { return v == "" })
	if features.Auth {
		secret, err := newSecret()
		if err != nil {
			return false, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		lines = setEnv(lines, "JWT_SECRET", secret, func(v string) bool {
			return placeholderSecrets[strings.ToLower(v)]
		})
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0600); err != nil {
		return false, fmt.Errorf("failed to write .env: %w", err)
	}
	return true, nil
}

// setEnv assigns value to key when the current value satisfies replace,
// appending the key when it is absent.
func setEnv(lines []string, key, value string, replace func(string) bool) []string {
	for i, line := range lines {
		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}
		if replace(unquote(strings.TrimSpace(v))) {
			lines[i] = key + "=" + value
		}
		return lines
	}
	return append(lines, key+"="+value)
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

const secretLength = 64

func newSecret() (string, error) {
	return utils.NanoString(secretLength)
}
