package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charcoles/charcole/cmd/create-charcole/generator/templates"
	"github.com/charcoles/charcole/ecode"
	"github.com/charcoles/charcole/utils"
)

// ErrTemplateMissing is returned when the template root does not exist.
var ErrTemplateMissing = errors.New(ecode.NotExist("template"))

// modulesDir holds the optional feature modules inside a template tree.
const modulesDir = "src/modules"

// Entries never copied out of a template tree.
var excluded = map[string]bool{
	"node_modules":      true,
	"dist":              true,
	".DS_Store":         true,
	"basePackage.json":  true,
	"package-lock.json": true,
}

// featureFiles are files outside src/modules that belong to an optional module.
var featureFiles = map[string][]string{
	ModuleSwagger: {"src/config/swagger.config.ts", "src/config/swagger.config.js"},
}

// CopyTemplate copies the tree at root in src into dst. Optional module
// directories follow their feature flag, the swagger module is never copied
// because projects consume it as a published package, module manifests are
// left for BuildManifest, and *.tmpl files are rendered with data.
func CopyTemplate(src fs.FS, root, dst string, data templates.Data) error {
	info, err := fs.Stat(src, root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrTemplateMissing, root)
	}
	c := &copier{src: src, dst: dst, data: data, features: Features{Auth: data.Auth, Swagger: data.Swagger}}
	return c.copyDir(root, "")
}

type copier struct {
	src      fs.FS
	dst      string
	data     templates.Data
	features Features
}

func (c *copier) copyDir(dir, rel string) error {
	entries, err := fs.ReadDir(c.src, dir)
	if err != nil {
		return fmt.Errorf("failed to read template directory %s: %w", dir, err)
	}
	if err := utils.EnsureDir(filepath.Join(c.dst, filepath.FromSlash(rel))); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", rel, err)
	}

	for _, e := range entries {
		name := e.Name()
		if excluded[name] {
			continue
		}
		srcPath := path.Join(dir, name)
		relPath := path.Join(rel, name)

		if e.IsDir() {
			if rel == modulesDir && isOptionalModule(name) {
				if name == ModuleSwagger || !c.features.Enabled(name) {
					continue
				}
			}
			if err := c.copyDir(srcPath, relPath); err != nil {
				return err
			}
			continue
		}

		if name == "package.json" && strings.HasPrefix(relPath, modulesDir+"/") {
			continue
		}
		outRel := strings.TrimSuffix(relPath, ".tmpl")
		if owner, ok := featureOwner(outRel); ok && !c.features.Enabled(owner) {
			continue
		}

		target := filepath.Join(c.dst, filepath.FromSlash(outRel))
		if outRel != relPath {
			if err := c.render(srcPath, target); err != nil {
				return err
			}
			continue
		}
		if err := utils.CopyFile(c.src, srcPath, target); err != nil {
			return fmt.Errorf("failed to copy %s: %w", relPath, err)
		}
	}
	return nil
}

func (c *copier) render(srcPath, target string) error {
	content, err := fs.ReadFile(c.src, srcPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", srcPath, err)
	}
	if err := utils.WriteTemplateFile(target, string(content), c.data); err != nil {
		return fmt.Errorf("failed to render %s: %w", srcPath, err)
	}
	return nil
}

func featureOwner(rel string) (string, bool) {
	for module, files := range featureFiles {
		for _, f := range files {
			if f == rel {
				return module, true
			}
		}
	}
	return "", false
}

// Cleanup removes files owned by deselected features from dst, if present.
func Cleanup(dst string, features Features) error {
	for _, module := range optionalModules {
		if features.Enabled(module) {
			continue
		}
		paths := []string{path.Join(modulesDir, module)}
		paths = append(paths, featureFiles[module]...)
		for _, p := range paths {
			if err := os.RemoveAll(filepath.Join(dst, filepath.FromSlash(p))); err != nil {
				return fmt.Errorf("failed to remove %s: %w", p, err)
			}
		}
	}
	return nil
}
