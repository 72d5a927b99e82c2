package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldworks/panelforge/pkg/project"
)

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func typeRunes(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}
	return m
}

func TestWizardWalkThrough(t *testing.T) {
	m := initialModel(project.NewRecipe(""))
	m = typeRunes(t, m, "blog")
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyEnter}, // accept name
		tea.KeyMsg{Type: tea.KeyDown},  // sqlite -> postgres
		tea.KeyMsg{Type: tea.KeyEnter}, // accept database
		tea.KeyMsg{Type: tea.KeyEnter}, // accept npm
		tea.KeyMsg{Type: tea.KeyEnter}, // confirm
	)
	if !m.accepted {
		t.Fatalf("wizard not accepted after walkthrough")
	}
	r := m.recipe()
	if r.Name != "blog" {
		t.Errorf("name = %q, want blog", r.Name)
	}
	if r.Database != project.DatabasePostgres {
		t.Errorf("database = %v, want postgres", r.Database)
	}
	if r.PackageManager != project.PackageManagerNpm {
		t.Errorf("package manager = %v, want npm", r.PackageManager)
	}
	if r.Port != project.DefaultPort {
		t.Errorf("port = %d, want %d", r.Port, project.DefaultPort)
	}
}

func TestWizardRejectsInvalidName(t *testing.T) {
	m := initialModel(project.NewRecipe(""))
	m = typeRunes(t, m, "Not Valid!")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != stepName {
		t.Fatalf("step = %q, want %q", m.step, stepName)
	}
	if m.status == "" {
		t.Fatal("expected a validation message for an invalid name")
	}
}

func TestWizardPreselectsDefaults(t *testing.T) {
	defaults := project.Recipe{
		Name:           "shop",
		Database:       project.DatabasePostgres,
		PackageManager: project.PackageManagerYarn,
		Port:           4000,
	}
	m := initialModel(defaults)
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if !m.accepted {
		t.Fatal("wizard not accepted")
	}
	if got := m.recipe(); got != defaults {
		t.Fatalf("recipe = %+v, want %+v", got, defaults)
	}
}

func TestWizardEscOnNameCancels(t *testing.T) {
	m := initialModel(project.NewRecipe("blog"))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if m.accepted {
		t.Fatal("esc should not accept the recipe")
	}
	if cmd == nil {
		t.Fatal("esc should quit the program")
	}
}

func TestNextStepsMentionsInstallWhenSkipped(t *testing.T) {
	recipe := project.Recipe{
		Name:           "blog",
		Database:       project.DatabaseSqlite,
		PackageManager: project.PackageManagerNpm,
		Port:           3000,
	}
	md := NextSteps(recipe, false)
	if !strings.Contains(md, "npm install") {
		t.Errorf("next steps missing install command:\n%s", md)
	}
	if !strings.Contains(md, "cd blog") {
		t.Errorf("next steps missing cd:\n%s", md)
	}

	md = NextSteps(recipe, true)
	if strings.Contains(md, "npm install") {
		t.Errorf("install already ran, should not be suggested:\n%s", md)
	}
}
