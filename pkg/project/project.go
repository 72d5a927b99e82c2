package project

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultPort is the port the generated app listens on unless the
// recipe says otherwise.
const DefaultPort = 3000

// npm package name rules, minus the scoped-package form.
var nameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Recipe is everything the scaffolder needs to know about the project
// it is about to create. It is passed around explicitly; nothing in
// this module keeps recipe state in globals.
type Recipe struct {
	Name           string         `yaml:"name"`
	Database       Database       `yaml:"database"`
	PackageManager PackageManager `yaml:"package_manager"`
	Port           int            `yaml:"port"`
}

// NewRecipe returns a recipe for name with every other answer defaulted.
func NewRecipe(name string) Recipe {
	return Recipe{
		Name: name,
		Port: DefaultPort,
	}
}

// LoadRecipe reads a YAML answers file for unattended runs.
func LoadRecipe(path string) (Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to read recipe file: %w", err)
	}

	recipe := Recipe{Port: DefaultPort}
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return Recipe{}, fmt.Errorf("failed to parse recipe file: %w", err)
	}

	if err := recipe.Validate(); err != nil {
		return Recipe{}, err
	}

	return recipe, nil
}

// Validate checks the recipe is complete enough to scaffold from.
func (r Recipe) Validate() error {
	if r.Name == "" {
		return errors.New("recipe is missing a project name")
	}
	if !ValidName(r.Name) {
		return fmt.Errorf("invalid project name: %q", r.Name)
	}
	if !r.Database.IsADatabase() {
		return fmt.Errorf("unknown database: %d", int(r.Database))
	}
	if !r.PackageManager.IsAPackageManager() {
		return fmt.Errorf("unknown package manager: %d", int(r.PackageManager))
	}
	if r.Port < 1 || r.Port > 65535 {
		return fmt.Errorf("port out of range: %d", r.Port)
	}

	return nil
}

// DatabaseURL returns the DATABASE_URL the generated app starts with.
func (r Recipe) DatabaseURL() string {
	return r.Database.ConnectionURL(r.Name)
}

// ValidName reports whether name is usable as both a directory name and
// an npm package name.
func ValidName(name string) bool {
	return len(name) > 0 && len(name) <= 214 && nameRegex.MatchString(name)
}
