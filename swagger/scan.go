package swagger

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// PathMap holds raw OpenAPI path items keyed by path, then by method.
type PathMap map[string]map[string]any

// Block comments must open at the start of a line so glob patterns such as
// "src/**/*.ts" inside string literals are not mistaken for comments.
var blockComment = regexp.MustCompile(`(?ms)^[ \t]*/\*\*(.*?)\*/`)

type commentBlock struct {
	line int
	text string
}

// ScanPaths reads every file matched by patterns under baseDir and merges the
// path items documented in @openapi or @swagger comment blocks. Files are read
// in lexical order and later definitions of the same path and method win.
// Problems with one pattern, file or block are returned and the rest is
// still scanned.
func ScanPaths(baseDir string, patterns []string) (PathMap, []error) {
	paths := PathMap{}
	var errs []error

	files, globErrs := globFiles(baseDir, patterns)
	errs = append(errs, globErrs...)

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", file, err))
			continue
		}
		for _, block := range annotatedBlocks(string(src)) {
			doc, err := parseBlock(block.text)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s:%d: %w", file, block.line, err))
				continue
			}
			mergePaths(paths, doc)
		}
	}
	return paths, errs
}

func globFiles(baseDir string, patterns []string) ([]string, []error) {
	var errs []error
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		var matches []string
		var err error
		if filepath.IsAbs(pattern) {
			matches, err = doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		} else {
			pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")
			matches, err = doublestar.Glob(os.DirFS(baseDir), pattern, doublestar.WithFilesOnly())
			for i, m := range matches {
				matches[i] = filepath.Join(baseDir, filepath.FromSlash(m))
			}
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("glob %q: %w", pattern, err))
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	slices.Sort(files)
	return files, errs
}

// annotatedBlocks returns the YAML bodies of doc comments tagged @openapi or @swagger.
func annotatedBlocks(src string) []commentBlock {
	var blocks []commentBlock
	for _, loc := range blockComment.FindAllStringSubmatchIndex(src, -1) {
		lines := strings.Split(src[loc[2]:loc[3]], "\n")
		for i, l := range lines {
			l = strings.TrimLeft(l, " \t")
			l = strings.TrimPrefix(l, "*")
			lines[i] = strings.TrimPrefix(l, " ")
		}
		if text, ok := annotated(lines); ok {
			blocks = append(blocks, commentBlock{line: strings.Count(src[:loc[0]], "\n") + 1, text: text})
		}
	}

	var run []string
	start := 0
	flush := func() {
		if text, ok := annotated(run); ok {
			blocks = append(blocks, commentBlock{line: start, text: text})
		}
		run = nil
	}
	for i, l := range strings.Split(src, "\n") {
		trimmed := strings.TrimLeft(l, " \t")
		if !strings.HasPrefix(trimmed, "//") {
			if run != nil {
				flush()
			}
			continue
		}
		if run == nil {
			start = i + 1
		}
		run = append(run, strings.TrimPrefix(strings.TrimPrefix(trimmed, "//"), " "))
	}
	if run != nil {
		flush()
	}

	slices.SortFunc(blocks, func(a, b commentBlock) int { return a.line - b.line })
	return blocks
}

// annotated checks the tag line and returns the dedented remainder.
func annotated(lines []string) (string, bool) {
	for i, l := range lines {
		tag := strings.TrimSpace(l)
		if tag == "" {
			continue
		}
		if tag != "@openapi" && tag != "@swagger" {
			return "", false
		}
		return dedent(lines[i+1:]), true
	}
	return "", false
}

func dedent(lines []string) string {
	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	var b strings.Builder
	for _, l := range lines {
		if len(l) >= indent && indent > 0 {
			l = l[indent:]
		}
		b.WriteString(strings.TrimRight(l, " \t\r"))
		b.WriteByte('\n')
	}
	return b.String()
}

func parseBlock(text string) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse openapi block: %w", err)
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	doc, ok := normalizeYAML(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("openapi block is a %T, want a mapping", raw)
	}
	return doc, nil
}

// normalizeYAML converts mappings with non-string keys, such as status codes,
// into string-keyed maps so the value can be encoded as JSON.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

func mergePaths(dst PathMap, doc map[string]any) {
	add := func(path string, item any) {
		ops, ok := item.(map[string]any)
		if !ok {
			return
		}
		if dst[path] == nil {
			dst[path] = map[string]any{}
		}
		for method, op := range ops {
			dst[path][method] = op
		}
	}
	for key, val := range doc {
		switch {
		case key == "paths":
			if m, ok := val.(map[string]any); ok {
				for path, item := range m {
					add(path, item)
				}
			}
		case strings.HasPrefix(key, "/"):
			add(key, val)
		}
	}
}
