// Package config provides configuration management for panelctl.
//
// This package handles loading and validating the tool's own settings:
// the defaults new recipes start from and how external tools are run.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - panelforge.yml in the user config directory, or the directory
//     named by PANELFORGE_CONFIG_PATH
//   - PANELFORGE_* environment variables (take precedence)
//
// Each attribute remembers which source supplied it so
// `panelctl configuration show` can report default, file or
// environment per value.
//
// # Key Configuration Options
//
//   - PANELFORGE_DEFAULT_DATABASE: Database for new recipes
//   - PANELFORGE_DEFAULT_PACKAGE_MANAGER: Package manager for new recipes
//   - PANELFORGE_DEFAULT_PORT: Port for new recipes
//   - PANELFORGE_SCHEMA_TOOL: Executable that drives Prisma
//   - PANELFORGE_SKIP_INSTALL: Skip dependency installation
package config
