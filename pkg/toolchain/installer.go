package toolchain

import (
	"fmt"

	"github.com/fieldworks/panelforge/pkg/project"
)

// Installer runs the recipe's package manager to install the generated
// project's dependencies.
type Installer struct {
	Runner Runner
}

// Install runs the package manager's install command in dir.
func (i Installer) Install(dir string, pm project.PackageManager) error {
	argv := pm.InstallArgs()
	if err := i.Runner.Run(dir, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("%s install failed: %w", pm, err)
	}

	return nil
}
