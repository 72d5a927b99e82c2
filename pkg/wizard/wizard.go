package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldworks/panelforge/pkg/project"
)

const (
	stepName           = "name"
	stepDatabase       = "database"
	stepPackageManager = "package_manager"
	stepConfirm        = "confirm"
)

type model struct {
	step      string
	nameInput string
	dbIndex   int
	pmIndex   int
	port      int
	status    string
	accepted  bool
	width     int
	styles    struct {
		title  lipgloss.Style
		cursor lipgloss.Style
		muted  lipgloss.Style
	}

	databases       []project.Database
	packageManagers []project.PackageManager
}

// initialModel starts at the name step with every answer pre-filled from
// defaults.
func initialModel(defaults project.Recipe) model {
	m := model{
		step:            stepName,
		nameInput:       defaults.Name,
		port:            defaults.Port,
		databases:       project.DatabaseValues(),
		packageManagers: project.PackageManagerValues(),
	}
	if m.port == 0 {
		m.port = project.DefaultPort
	}
	for i, db := range m.databases {
		if db == defaults.Database {
			m.dbIndex = i
		}
	}
	for i, pm := range m.packageManagers {
		if pm == defaults.PackageManager {
			m.pmIndex = i
		}
	}
	m.styles.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	m.styles.cursor = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	m.styles.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return m
}

// recipe assembles the answers collected so far.
func (m model) recipe() project.Recipe {
	return project.Recipe{
		Name:           strings.TrimSpace(m.nameInput),
		Database:       m.databases[m.dbIndex],
		PackageManager: m.packageManagers[m.pmIndex],
		Port:           m.port,
	}
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		if k == "ctrl+c" {
			m.accepted = false
			return m, tea.Quit
		}
		switch m.step {
		case stepName:
			return m.updateName(k)
		case stepDatabase:
			return m.updateDatabase(k)
		case stepPackageManager:
			return m.updatePackageManager(k)
		case stepConfirm:
			return m.updateConfirm(k)
		}
	}
	return m, nil
}

func (m model) View() string {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Width(60)
	switch m.step {
	case stepDatabase:
		return box.Render(m.renderDatabase())
	case stepPackageManager:
		return box.Render(m.renderPackageManager())
	case stepConfirm:
		return box.Render(m.renderConfirm())
	default:
		return box.Render(m.renderName())
	}
}

// Step handlers ---------------------------------------------------------------
func (m model) updateName(k string) (tea.Model, tea.Cmd) {
	switch {
	case k == "enter":
		name := strings.TrimSpace(m.nameInput)
		if !project.ValidName(name) {
			m.status = fmt.Sprintf("%q is not a valid project name", name)
			return m, nil
		}
		m.nameInput = name
		m.status = ""
		m.step = stepDatabase
	case k == "esc":
		m.accepted = false
		return m, tea.Quit
	case k == "backspace":
		if len(m.nameInput) > 0 {
			m.nameInput = m.nameInput[:len(m.nameInput)-1]
		}
	case isRuneInput(k):
		m.nameInput += k
	}
	return m, nil
}

func (m model) updateDatabase(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "up", "k":
		if m.dbIndex > 0 {
			m.dbIndex--
		}
	case "down", "j":
		if m.dbIndex < len(m.databases)-1 {
			m.dbIndex++
		}
	case "enter":
		m.step = stepPackageManager
	case "esc":
		m.step = stepName
	}
	return m, nil
}

func (m model) updatePackageManager(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "up", "k":
		if m.pmIndex > 0 {
			m.pmIndex--
		}
	case "down", "j":
		if m.pmIndex < len(m.packageManagers)-1 {
			m.pmIndex++
		}
	case "enter":
		m.step = stepConfirm
	case "esc":
		m.step = stepDatabase
	}
	return m, nil
}

func (m model) updateConfirm(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "enter", "y":
		m.accepted = true
		return m, tea.Quit
	case "esc", "n":
		m.step = stepPackageManager
	}
	return m, nil
}

// Rendering -------------------------------------------------------------------
func (m model) renderName() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("New admin panel") + "\n\n")
	b.WriteString("Project name:\n")
	b.WriteString("> " + m.nameInput + "\n")
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.styles.muted.Render("Enter continue  Esc cancel"))
	return b.String()
}

func (m model) renderDatabase() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Database") + "\n\n")
	for i, db := range m.databases {
		cursor := "  "
		if i == m.dbIndex {
			cursor = m.styles.cursor.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, db))
	}
	b.WriteString("\n" + m.styles.muted.Render("Up/Down select  Enter continue  Esc back"))
	return b.String()
}

func (m model) renderPackageManager() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Package manager") + "\n\n")
	for i, pm := range m.packageManagers {
		cursor := "  "
		if i == m.pmIndex {
			cursor = m.styles.cursor.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, pm))
	}
	b.WriteString("\n" + m.styles.muted.Render("Up/Down select  Enter continue  Esc back"))
	return b.String()
}

func (m model) renderConfirm() string {
	r := m.recipe()
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Summary") + "\n\n")
	b.WriteString(fmt.Sprintf("Name             %s\n", r.Name))
	b.WriteString(fmt.Sprintf("Database         %s\n", r.Database))
	b.WriteString(fmt.Sprintf("Package manager  %s\n", r.PackageManager))
	b.WriteString(fmt.Sprintf("Port             %d\n", r.Port))
	b.WriteString("\n" + m.styles.muted.Render("Enter create  Esc back"))
	return b.String()
}

func isRuneInput(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && runes[0] >= 32 && runes[0] < 127
}
