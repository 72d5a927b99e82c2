package wizard

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldworks/panelforge/pkg/project"
)

// ErrCancelled is returned by Run when the user aborts the questionnaire
// instead of confirming it.
var ErrCancelled = errors.New("wizard cancelled")

// Run boots the questionnaire and blocks until it exits. Answers from
// defaults pre-fill every step so the user only changes what they want.
func Run(ctx context.Context, defaults project.Recipe) (project.Recipe, error) {
	program := tea.NewProgram(initialModel(defaults), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return project.Recipe{}, err
	}
	m, ok := final.(model)
	if !ok {
		return project.Recipe{}, errors.New("wizard returned an unexpected model")
	}
	if !m.accepted {
		return project.Recipe{}, ErrCancelled
	}
	return m.recipe(), nil
}
