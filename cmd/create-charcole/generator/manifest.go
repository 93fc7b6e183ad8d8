package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
)

// ErrBaseManifestMissing is returned when a template has no usable basePackage.json.
var ErrBaseManifestMissing = errors.New("base manifest missing")

// Manifest is a decoded package.json document.
type Manifest map[string]any

// Sections merged key by key when a module fragment is applied.
var mergedSections = []string{"dependencies", "devDependencies", "scripts"}

// Merge returns a new manifest with the fragment's dependencies,
// devDependencies and scripts laid over base. Fragment entries win on
// conflicting keys. Other fragment keys are ignored and neither input is modified.
func Merge(base, fragment Manifest) Manifest {
	out := maps.Clone(base)
	if out == nil {
		out = Manifest{}
	}
	for _, section := range mergedSections {
		b, bok := base[section].(map[string]any)
		f, fok := fragment[section].(map[string]any)
		if !bok && !fok {
			continue
		}
		merged := make(map[string]any, len(b)+len(f))
		maps.Copy(merged, b)
		maps.Copy(merged, f)
		out[section] = merged
	}
	return out
}

// BuildManifest produces the project manifest: basePackage.json with the
// package.json fragment of every selected module merged in, and name set.
// Unreadable fragments are skipped and returned as warnings.
func BuildManifest(fsys fs.FS, root, name string, features Features) (Manifest, []error, error) {
	basePath := path.Join(root, "basePackage.json")
	base, err := readManifest(fsys, basePath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBaseManifestMissing, err)
	}

	var warnings []error
	m := base
	for _, module := range features.Selected() {
		fragPath := path.Join(root, modulesDir, module, "package.json")
		if _, err := fs.Stat(fsys, fragPath); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		frag, err := readManifest(fsys, fragPath)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("module %s: %w", module, err))
			continue
		}
		m = Merge(m, frag)
	}

	m = maps.Clone(m)
	m["name"] = name
	return m, warnings, nil
}

func readManifest(fsys fs.FS, p string) (Manifest, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", p, err)
	}
	if m == nil {
		return nil, fmt.Errorf("invalid %s: not an object", p)
	}
	return m, nil
}

// Conventional package.json key order. Unknown keys follow in lexical order.
var manifestKeyOrder = []string{
	"name", "version", "private", "description", "main", "type", "scripts",
	"keywords", "author", "license", "engines", "dependencies", "devDependencies",
}

// MarshalManifest encodes m as 2-space indented JSON with a trailing newline.
func MarshalManifest(m Manifest) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for _, k := range manifestKeyOrder {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range m {
		if !slices.Contains(manifestKeyOrder, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	keys = append(keys, rest...)

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, k := range keys {
		key, err := encodeJSON(k, "")
		if err != nil {
			return nil, err
		}
		val, err := encodeJSON(m[k], "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", k, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// encodeJSON encodes v without HTML escaping so scripts such as "a && b" stay readable.
func encodeJSON(v any, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteManifest writes m to p.
func WriteManifest(p string, m Manifest) error {
	data, err := MarshalManifest(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
