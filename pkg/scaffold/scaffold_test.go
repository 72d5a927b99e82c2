package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/panelforge/pkg/envfile"
	"github.com/fieldworks/panelforge/pkg/project"
	"github.com/fieldworks/panelforge/pkg/secrets"
)

func testRecipe() project.Recipe {
	return project.Recipe{
		Name:           "shop-admin",
		Database:       project.DatabaseSqlite,
		PackageManager: project.PackageManagerNpm,
		Port:           3000,
	}
}

func TestWriteSqliteScaffold(t *testing.T) {
	dir := t.TempDir()

	written, err := Scaffolder{}.Write(dir, testRecipe())
	require.NoError(t, err)

	expected := []string{
		"package.json",
		".env",
		".gitignore",
		"prisma/schema.prisma",
		"src/app.js",
		"src/routes/index.js",
		"src/routes/auth.js",
		"src/routes/admin.js",
		"src/middleware/auth.js",
		"src/middleware/csrf.js",
		"views/layout.ejs",
		"views/login.ejs",
		"views/dashboard.ejs",
		"views/users.ejs",
		"views/error.ejs",
		"public/css/main.css",
		"README.md",
		"docs/ROUTES.md",
	}
	assert.Equal(t, expected, written)

	for _, rel := range written {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, "%s should exist", rel)
	}

	// sqlite recipes carry no SQL migrations
	_, err = os.Stat(filepath.Join(dir, "db"))
	assert.True(t, os.IsNotExist(err))
}

func TestWritePostgresScaffold(t *testing.T) {
	dir := t.TempDir()

	recipe := testRecipe()
	recipe.Database = project.DatabasePostgres

	written, err := Scaffolder{}.Write(dir, recipe)
	require.NoError(t, err)

	assert.Contains(t, written, "db/migrations/000001_bootstrap.up.sql")
	assert.Contains(t, written, "db/migrations/000001_bootstrap.down.sql")

	schema, err := os.ReadFile(filepath.Join(dir, "prisma", "schema.prisma"))
	require.NoError(t, err)
	assert.Contains(t, string(schema), `provider = "postgresql"`)

	env, err := envfile.Load(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	url, ok := env.Get("DATABASE_URL")
	require.True(t, ok)
	assert.Contains(t, url, "postgresql://")
	assert.Contains(t, url, "shop-admin")
}

func TestWriteRendersRecipe(t *testing.T) {
	dir := t.TempDir()

	_, err := Scaffolder{}.Write(dir, testRecipe())
	require.NoError(t, err)

	pkg, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pkg), `"name": "shop-admin"`)

	app, err := os.ReadFile(filepath.Join(dir, "src", "app.js"))
	require.NoError(t, err)
	assert.Contains(t, string(app), "process.env.PORT || 3000")
	assert.NotContains(t, string(app), "{{", "all template actions should be rendered")
}

func TestWriteEnvIsProvisionable(t *testing.T) {
	dir := t.TempDir()

	_, err := Scaffolder{}.Write(dir, testRecipe())
	require.NoError(t, err)

	envPath := filepath.Join(dir, ".env")

	info, err := os.Stat(envPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	doc, err := envfile.Load(envPath)
	require.NoError(t, err)

	for _, key := range secrets.DefaultKeys {
		value, ok := doc.Get(key)
		require.True(t, ok, "%s entry must exist", key)
		assert.Empty(t, value, "%s starts unprovisioned", key)
	}

	filled, err := secrets.Provisioner{}.Provision(doc)
	require.NoError(t, err)
	assert.Equal(t, secrets.DefaultKeys, filled)

	port, ok := doc.Get("PORT")
	require.True(t, ok)
	assert.Equal(t, "3000", port)
}

func TestWriteRefusesNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0644))

	_, err := Scaffolder{}.Write(dir, testRecipe())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirNotEmpty)

	// nothing scaffolded
	_, err = os.Stat(filepath.Join(dir, "package.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0644))

	_, err := Scaffolder{Force: true}.Write(dir, testRecipe())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "package.json"))
	assert.NoError(t, err)
}

func TestWriteInvalidRecipe(t *testing.T) {
	recipe := testRecipe()
	recipe.Name = "Bad Name"

	_, err := Scaffolder{}.Write(t.TempDir(), recipe)
	assert.Error(t, err)
}

func TestAddRoute(t *testing.T) {
	dir := t.TempDir()

	_, err := Scaffolder{}.Write(dir, testRecipe())
	require.NoError(t, err)

	touched, err := AddRoute(dir, "reports")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/routes/reports.js", "views/reports.ejs", "docs/ROUTES.md"}, touched)

	route, err := os.ReadFile(filepath.Join(dir, "src", "routes", "reports.js"))
	require.NoError(t, err)
	assert.Contains(t, string(route), "res.render('reports'")

	view, err := os.ReadFile(filepath.Join(dir, "views", "reports.ejs"))
	require.NoError(t, err)
	assert.Contains(t, string(view), "Reports")

	docs, err := os.ReadFile(filepath.Join(dir, "docs", "ROUTES.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(docs), "## GET /reports\n\nRenders the reports view.\n"))
}

func TestAddRouteExisting(t *testing.T) {
	dir := t.TempDir()

	_, err := Scaffolder{}.Write(dir, testRecipe())
	require.NoError(t, err)

	_, err = AddRoute(dir, "auth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddRouteInvalidName(t *testing.T) {
	tests := []string{"", "Report", "2fast", "has space", "../escape"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := AddRoute(t.TempDir(), name)
			assert.Error(t, err)
		})
	}
}

func TestAddRouteOutsideProject(t *testing.T) {
	_, err := AddRoute(t.TempDir(), "reports")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a generated project")
}
