package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/fieldworks/panelforge/pkg/project"
)

// NextSteps builds the post-create instructions for a freshly scaffolded
// project as markdown.
func NextSteps(recipe project.Recipe, installed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", recipe.Name)
	b.WriteString("Your admin panel is ready.\n\n")
	b.WriteString("```\n")
	fmt.Fprintf(&b, "cd %s\n", recipe.Name)
	if !installed {
		fmt.Fprintf(&b, "%s\n", strings.Join(recipe.PackageManager.InstallArgs(), " "))
	}
	fmt.Fprintf(&b, "%s dev\n", strings.Join(recipe.PackageManager.RunPrefix(), " "))
	b.WriteString("```\n\n")
	fmt.Fprintf(&b, "The server listens on http://localhost:%d.\n", recipe.Port)
	b.WriteString("Create the first admin login with `panelctl db seed`.\n")
	return b.String()
}

// RenderMarkdown renders md for the terminal, falling back to the raw
// text when no renderer is available.
func RenderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
