package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/panelforge/pkg/project"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PANELFORGE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DefaultDatabase)
	assert.Equal(t, "npm", cfg.DefaultPackageManager)
	assert.Equal(t, project.DefaultPort, cfg.DefaultPort)
	assert.Equal(t, "npx", cfg.SchemaTool)
	assert.False(t, cfg.SkipInstall)

	for _, attr := range cfg.Attributes() {
		assert.Equal(t, "default", attr.Source, "%s should come from defaults", attr.Name)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PANELFORGE_CONFIG_PATH", dir)

	content := "default_database: postgres\ndefault_port: 4000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DefaultDatabase)
	assert.Equal(t, "file", cfg.Source("default_database"))
	assert.Equal(t, 4000, cfg.DefaultPort)
	assert.Equal(t, "file", cfg.Source("default_port"))

	// untouched values remain defaults
	assert.Equal(t, "npm", cfg.DefaultPackageManager)
	assert.Equal(t, "default", cfg.Source("default_package_manager"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PANELFORGE_CONFIG_PATH", dir)
	t.Setenv("PANELFORGE_DEFAULT_DATABASE", "sqlite")
	t.Setenv("PANELFORGE_SKIP_INSTALL", "true")

	content := "default_database: postgres\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DefaultDatabase)
	assert.Equal(t, "environment", cfg.Source("default_database"))
	assert.True(t, cfg.SkipInstall)
	assert.Equal(t, "environment", cfg.Source("skip_install"))
}

func TestLoadBadYaml(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PANELFORGE_CONFIG_PATH", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("default_port: [oops\n"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PanelConfig)
		valid  bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *PanelConfig) {},
			valid:  true,
		},
		{
			name:   "unknown database",
			mutate: func(c *PanelConfig) { c.DefaultDatabase = "mongodb" },
			valid:  false,
		},
		{
			name:   "unknown package manager",
			mutate: func(c *PanelConfig) { c.DefaultPackageManager = "bower" },
			valid:  false,
		},
		{
			name:   "port out of range",
			mutate: func(c *PanelConfig) { c.DefaultPort = 0 },
			valid:  false,
		},
		{
			name:   "empty schema tool",
			mutate: func(c *PanelConfig) { c.SchemaTool = "" },
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEnumAccessors(t *testing.T) {
	cfg := newDefault()
	cfg.DefaultDatabase = "postgres"
	cfg.DefaultPackageManager = "yarn"

	db, err := cfg.Database()
	require.NoError(t, err)
	assert.Equal(t, project.DatabasePostgres, db)

	pm, err := cfg.PackageManager()
	require.NoError(t, err)
	assert.Equal(t, project.PackageManagerYarn, pm)
}

func TestFormatText(t *testing.T) {
	t.Setenv("PANELFORGE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	text := cfg.FormatText()
	assert.Contains(t, text, "NAME")
	assert.Contains(t, text, "default_database")
	assert.Contains(t, text, "sqlite")
	assert.Contains(t, text, "default")
}

func TestFormatJSON(t *testing.T) {
	t.Setenv("PANELFORGE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	out, err := cfg.FormatJSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"config_file"`)
	assert.Contains(t, out, `"default_database"`)
}
