// Package wizard implements the interactive questionnaire `panelctl new`
// runs when flags or a recipe file do not pin every answer down. It walks
// the user through a project name, database and package manager choice,
// and a confirmation screen, and hands back a complete recipe.
package wizard
