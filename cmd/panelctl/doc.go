// Package main provides panelctl, the PanelForge project generator.
//
// PanelForge scaffolds Express + EJS + Prisma admin panels: it writes the
// project files, fills the generated .env with independent secrets,
// installs dependencies with the chosen package manager, and prepares the
// database client.
//
// # Architecture
//
// The tool is organized into several packages:
//
//   - pkg/scaffold: project generation from embedded templates
//   - pkg/secrets: secret provisioning for generated .env files
//   - pkg/envfile: line-preserving dotenv editing
//   - pkg/project: project recipes (name, database, package manager, port)
//   - pkg/toolchain: external tool discovery and execution
//   - pkg/db: database connection and seeding for generated apps
//   - pkg/token: session tokens compatible with the generated app
//   - pkg/routesdoc: route documentation parsing and validation
//   - pkg/config: panelctl configuration management
//   - pkg/wizard: interactive questionnaire
//
// # Quick Start
//
// Projects are created and managed via the panelctl CLI:
//
//	# Create a new panel interactively
//	panelctl new
//
//	# Or unattended
//	panelctl new blog --database postgres --non-interactive
//
//	# Fill JWT_SECRET and CSRF_SECRET in an existing project
//	panelctl secrets provision --dir blog
//
//	# Create the first admin login
//	panelctl db seed --dir blog --email admin@example.com
//
// # Environment Variables
//
//   - DATABASE_URL: connection string for db commands (falls back to the project's .env)
//   - PANELFORGE_CONFIG_PATH: directory holding panelforge.yml
//   - PANELFORGE_DEFAULT_DATABASE: default database for new recipes
//   - PANELFORGE_DEFAULT_PACKAGE_MANAGER: default package manager for new recipes
//   - PANELFORGE_LOG_LEVEL: log level for database commands (debug enables SQL logging)
package main
