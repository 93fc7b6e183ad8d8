package generator

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/charcoles/charcole/cmd/create-charcole/generator/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appTemplate = `import express from "express";
{{- if .Auth}}
import authRoutes from "./modules/auth/auth.routes";
{{- end}}
{{- if .Swagger}}
import { setupSwagger } from "@charcoles/swagger";
{{- end}}
const app = express();
`

func fixtureFS() fstest.MapFS {
	file := func(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s), Mode: 0o644} }
	return fstest.MapFS{
		"ts/basePackage.json":                   file(`{"name":"base","version":"1.0.0","scripts":{"dev":"tsx src/server.ts"},"dependencies":{"express":"^4.21.1"}}`),
		"ts/package-lock.json":                  file(`{}`),
		"ts/.env.example":                       file("APP_NAME=\nJWT_SECRET=your-secret-key\n"),
		"ts/node_modules/express/index.js":      file("module.exports = {}"),
		"ts/dist/server.js":                     file(""),
		"ts/src/.DS_Store":                      file(""),
		"ts/src/app.ts.tmpl":                    file(appTemplate),
		"ts/src/server.ts":                      file("import app from './app';\n"),
		"ts/src/config/swagger.config.ts":       file("export const swaggerOptions = {};\n"),
		"ts/src/modules/health/health.ts":       file("export {};\n"),
		"ts/src/modules/auth/auth.routes.ts":    file("export {};\n"),
		"ts/src/modules/auth/package.json":      file(`{"dependencies":{"jsonwebtoken":"^9.0.2","bcryptjs":"^2.4.3"}}`),
		"ts/src/modules/swagger/package.json":   file(`{"dependencies":{"@charcoles/swagger":"^1.0.0"}}`),
		"ts/src/modules/swagger/setup.ts":       file("export {};\n"),
		"js/basePackage.json":                   file(`{"name":"base","dependencies":{"express":"^4.21.1"}}`),
		"js/src/modules/auth/package.json":      file(`{"dependencies": [broken`),
		"js/src/modules/swagger/package.json":   file(`{"dependencies":{"@charcoles/swagger":"^1.0.0"}}`),
		"js/src/server.js":                      file(""),
		"broken/src/server.ts":                  file(""),
		"broken/src/modules/auth/package.json":  file(`{}`),
		"broken/src/modules/swagger/readme.txt": file(""),
	}
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCopyTemplate_NoFeatures(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, CopyTemplate(fixtureFS(), "ts", dst, templates.Data{Name: "demo"}))

	assert.FileExists(t, filepath.Join(dst, ".env.example"))
	assert.FileExists(t, filepath.Join(dst, "src/server.ts"))
	assert.FileExists(t, filepath.Join(dst, "src/modules/health/health.ts"))

	for _, p := range []string{
		"basePackage.json", "package-lock.json", "node_modules", "dist", "src/.DS_Store",
		"src/app.ts.tmpl", "src/modules/auth", "src/modules/swagger", "src/config/swagger.config.ts",
	} {
		assert.NoFileExists(t, filepath.Join(dst, p), p)
		assert.NoDirExists(t, filepath.Join(dst, p), p)
	}

	app := read(t, filepath.Join(dst, "src/app.ts"))
	assert.NotContains(t, app, "authRoutes")
	assert.NotContains(t, app, "setupSwagger")
	assert.Contains(t, app, "const app = express();")
}

func TestCopyTemplate_AllFeatures(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "demo")
	data := templates.Data{Name: "demo", Auth: true, Swagger: true}
	require.NoError(t, CopyTemplate(fixtureFS(), "ts", dst, data))

	assert.FileExists(t, filepath.Join(dst, "src/modules/auth/auth.routes.ts"))
	assert.NoFileExists(t, filepath.Join(dst, "src/modules/auth/package.json"), "module manifests are merged, not copied")
	assert.NoDirExists(t, filepath.Join(dst, "src/modules/swagger"), "swagger is consumed as a package")
	assert.FileExists(t, filepath.Join(dst, "src/config/swagger.config.ts"))

	app := read(t, filepath.Join(dst, "src/app.ts"))
	assert.Contains(t, app, `import authRoutes from "./modules/auth/auth.routes";`)
	assert.Contains(t, app, `import { setupSwagger } from "@charcoles/swagger";`)
}

func TestCopyTemplate_MissingRoot(t *testing.T) {
	err := CopyTemplate(fixtureFS(), "rust", t.TempDir(), templates.Data{Name: "demo"})
	assert.ErrorIs(t, err, ErrTemplateMissing)
}

func TestCleanup(t *testing.T) {
	dst := t.TempDir()
	for _, p := range []string{
		"src/modules/auth/auth.routes.ts",
		"src/modules/swagger/setup.ts",
		"src/config/swagger.config.ts",
		"src/config/env.ts",
	} {
		writeTestFile(t, filepath.Join(dst, p), "x")
	}

	require.NoError(t, Cleanup(dst, Features{Auth: true}))

	assert.FileExists(t, filepath.Join(dst, "src/modules/auth/auth.routes.ts"))
	assert.NoDirExists(t, filepath.Join(dst, "src/modules/swagger"))
	assert.NoFileExists(t, filepath.Join(dst, "src/config/swagger.config.ts"))
	assert.FileExists(t, filepath.Join(dst, "src/config/env.ts"))

	require.NoError(t, Cleanup(dst, Features{}), "missing paths are fine")
	assert.NoDirExists(t, filepath.Join(dst, "src/modules/auth"))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
