package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var routeNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

type routeData struct {
	Route string
	Title string
}

// AddRoute generates a route module and matching view for name inside
// an existing project and documents the path in docs/ROUTES.md. The
// route still has to be mounted in src/app.js by hand; callers print
// that instruction. It returns the project-relative paths it touched.
func AddRoute(dir, name string) ([]string, error) {
	if !routeNameRegex.MatchString(name) {
		return nil, fmt.Errorf("invalid route name: %q", name)
	}

	routesDir := filepath.Join(dir, "src", "routes")
	if _, err := os.Stat(routesDir); err != nil {
		return nil, fmt.Errorf("%s does not look like a generated project: %w", dir, err)
	}

	routeFile := filepath.Join(routesDir, name+".js")
	if _, err := os.Stat(routeFile); err == nil {
		return nil, fmt.Errorf("route %s already exists", name)
	}

	data := routeData{
		Route: name,
		Title: strings.ToUpper(name[:1]) + name[1:],
	}

	var touched []string

	content, err := render("route.js.tmpl", data)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(routeFile, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write route: %w", err)
	}
	touched = append(touched, "src/routes/"+name+".js")

	view, err := render("route-view.ejs.tmpl", data)
	if err != nil {
		return nil, err
	}
	viewsDir := filepath.Join(dir, "views")
	if err := os.MkdirAll(viewsDir, 0770); err != nil {
		return nil, fmt.Errorf("failed to create views directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(viewsDir, name+".ejs"), view, 0644); err != nil {
		return nil, fmt.Errorf("failed to write view: %w", err)
	}
	touched = append(touched, "views/"+name+".ejs")

	docsPath := filepath.Join(dir, "docs", "ROUTES.md")
	if _, err := os.Stat(docsPath); err == nil {
		entry := fmt.Sprintf("\n## GET /%s\n\nRenders the %s view.\n", name, name)
		f, err := os.OpenFile(docsPath, os.O_APPEND|os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to open routes doc: %w", err)
		}
		if _, err := f.WriteString(entry); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to update routes doc: %w", err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to update routes doc: %w", err)
		}
		touched = append(touched, "docs/ROUTES.md")
	}

	return touched, nil
}
