package swagger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const healthRoutes = `import { Router } from "express";

const router = Router();

/**
 * @openapi
 * /api/health:
 *   get:
 *     summary: Health check
 *     responses:
 *       200:
 *         $ref: '#/components/responses/Success'
 */
router.get("/health", (req, res) => res.json({ ok: true }));

/**
 * Regular comment, not documentation.
 */
export default router;
`

const userRoutes = `// @swagger
// /api/users:
//   post:
//     summary: Create user
//     responses:
//       201:
//         description: Created
//   get:
//     summary: List users
//     responses:
//       200:
//         description: OK
const apis = ["./src/**/*.ts"];
`

const overrideRoutes = `/**
 * @openapi
 * paths:
 *   /api/users:
 *     get:
 *       summary: List users (paged)
 *       responses:
 *         200:
 *           description: OK
 */
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/modules/health/health.routes.ts", healthRoutes)
	writeFile(t, dir, "src/modules/users/a.routes.ts", userRoutes)
	writeFile(t, dir, "src/modules/users/b.routes.ts", overrideRoutes)
	writeFile(t, dir, "README.md", "/**\n * @openapi\n * /ignored:\n *   get: {}\n */\n")

	paths, errs := ScanPaths(dir, []string{"./src/**/*.ts"})
	require.Empty(t, errs)
	require.Len(t, paths, 2)

	health := paths["/api/health"]["get"].(map[string]any)
	assert.Equal(t, "Health check", health["summary"])
	ok := health["responses"].(map[string]any)["200"].(map[string]any)
	assert.Equal(t, "#/components/responses/Success", ok["$ref"])

	users := paths["/api/users"]
	assert.Equal(t, "Create user", users["post"].(map[string]any)["summary"])
	assert.Equal(t, "List users (paged)", users["get"].(map[string]any)["summary"], "later files win per method")
}

func TestScanPaths_SoftFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/bad.js", "/**\n * @openapi\n * /x: [unclosed\n */\n")
	writeFile(t, dir, "src/good.js", "/**\n * @openapi\n * /y:\n *   get:\n *     summary: fine\n */\n")

	paths, errs := ScanPaths(dir, []string{"src/**/*.js", "src/[.js"})
	assert.Len(t, errs, 2)
	assert.Contains(t, paths, "/y")
	assert.NotContains(t, paths, "/x")
}

func TestAnnotatedBlocks(t *testing.T) {
	blocks := annotatedBlocks(userRoutes + "\n" + overrideRoutes)
	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].line)
	assert.Contains(t, blocks[0].text, "/api/users:\n  post:")
	assert.Contains(t, blocks[1].text, "paths:\n  /api/users:")
}

func TestNormalizeYAML(t *testing.T) {
	in := map[string]any{
		"responses": map[any]any{200: map[any]any{"description": "OK"}},
		"tags":      []any{map[any]any{"name": "users"}},
	}
	out := normalizeYAML(in).(map[string]any)
	assert.Equal(t, map[string]any{"200": map[string]any{"description": "OK"}}, out["responses"])
	assert.Equal(t, []any{map[string]any{"name": "users"}}, out["tags"])
}
