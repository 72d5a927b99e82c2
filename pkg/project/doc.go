// Package project describes what to scaffold: the recipe a user answers
// interactively or supplies as a YAML file for unattended runs.
package project
