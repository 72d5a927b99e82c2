package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/fieldworks/panelforge/pkg/project"
)

//go:embed templates
var templateFiles embed.FS

// ErrDirNotEmpty means the target directory already has contents and
// force was not requested.
var ErrDirNotEmpty = errors.New("directory not empty")

// A File maps one embedded template to its place in the generated
// project.
type File struct {
	Template string
	Path     string
	Mode     os.FileMode

	// PostgresOnly restricts the file to postgres recipes.
	PostgresOnly bool
}

// Manifest lists every file a fresh scaffold writes, in write order.
var Manifest = []File{
	{Template: "package.json.tmpl", Path: "package.json", Mode: 0644},
	{Template: "env.tmpl", Path: ".env", Mode: 0600},
	{Template: "gitignore.tmpl", Path: ".gitignore", Mode: 0644},
	{Template: "prisma/schema.prisma.tmpl", Path: "prisma/schema.prisma", Mode: 0644},
	{Template: "src/app.js.tmpl", Path: "src/app.js", Mode: 0644},
	{Template: "src/routes/index.js.tmpl", Path: "src/routes/index.js", Mode: 0644},
	{Template: "src/routes/auth.js.tmpl", Path: "src/routes/auth.js", Mode: 0644},
	{Template: "src/routes/admin.js.tmpl", Path: "src/routes/admin.js", Mode: 0644},
	{Template: "src/middleware/auth.js.tmpl", Path: "src/middleware/auth.js", Mode: 0644},
	{Template: "src/middleware/csrf.js.tmpl", Path: "src/middleware/csrf.js", Mode: 0644},
	{Template: "views/layout.ejs.tmpl", Path: "views/layout.ejs", Mode: 0644},
	{Template: "views/login.ejs.tmpl", Path: "views/login.ejs", Mode: 0644},
	{Template: "views/dashboard.ejs.tmpl", Path: "views/dashboard.ejs", Mode: 0644},
	{Template: "views/users.ejs.tmpl", Path: "views/users.ejs", Mode: 0644},
	{Template: "views/error.ejs.tmpl", Path: "views/error.ejs", Mode: 0644},
	{Template: "public/css/main.css.tmpl", Path: "public/css/main.css", Mode: 0644},
	{Template: "README.md.tmpl", Path: "README.md", Mode: 0644},
	{Template: "docs/ROUTES.md.tmpl", Path: "docs/ROUTES.md", Mode: 0644},
	{Template: "db/migrations/000001_bootstrap.up.sql.tmpl", Path: "db/migrations/000001_bootstrap.up.sql", Mode: 0644, PostgresOnly: true},
	{Template: "db/migrations/000001_bootstrap.down.sql.tmpl", Path: "db/migrations/000001_bootstrap.down.sql", Mode: 0644, PostgresOnly: true},
}

// Files returns the manifest filtered for recipe.
func Files(recipe project.Recipe) []File {
	files := make([]File, 0, len(Manifest))
	for _, file := range Manifest {
		if file.PostgresOnly && recipe.Database != project.DatabasePostgres {
			continue
		}
		files = append(files, file)
	}

	return files
}

type templateData struct {
	Recipe         project.Recipe
	Provider       string
	DatabaseURL    string
	InstallCommand string
	RunCommand     string
}

func newTemplateData(recipe project.Recipe) templateData {
	return templateData{
		Recipe:         recipe,
		Provider:       recipe.Database.Provider(),
		DatabaseURL:    recipe.DatabaseURL(),
		InstallCommand: strings.Join(recipe.PackageManager.InstallArgs(), " "),
		RunCommand:     strings.Join(append(recipe.PackageManager.RunPrefix(), "dev"), " "),
	}
}

// Scaffolder writes new projects.
type Scaffolder struct {
	// Force allows scaffolding into a directory that already has
	// contents.
	Force bool
}

// Write renders the manifest for recipe into dir, creating the
// directory if needed. It returns the project-relative paths it wrote.
func (s Scaffolder) Write(dir string, recipe project.Recipe) ([]string, error) {
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0770); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	if !s.Force {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read project directory: %w", err)
		}
		if len(entries) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrDirNotEmpty, dir)
		}
	}

	data := newTemplateData(recipe)

	var written []string
	for _, file := range Files(recipe) {
		content, err := render(file.Template, data)
		if err != nil {
			return nil, err
		}

		target := filepath.Join(dir, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0770); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(file.Path), err)
		}
		if err := os.WriteFile(target, content, file.Mode); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", file.Path, err)
		}

		written = append(written, file.Path)
	}

	return written, nil
}

func render(name string, data interface{}) ([]byte, error) {
	raw, err := templateFiles.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
