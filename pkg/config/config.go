package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fieldworks/panelforge/pkg/project"
)

// ConfigFileName is the settings file looked up in the config directory.
const ConfigFileName = "panelforge.yml"

// PanelConfig holds panelctl's own settings.
type PanelConfig struct {
	// DefaultDatabase is the database new recipes start from.
	DefaultDatabase string `yaml:"default_database" json:"default_database"`

	// DefaultPackageManager installs dependencies when the recipe does
	// not choose one.
	DefaultPackageManager string `yaml:"default_package_manager" json:"default_package_manager"`

	// DefaultPort is the port new recipes start from.
	DefaultPort int `yaml:"default_port" json:"default_port"`

	// SchemaTool is the executable that drives Prisma.
	SchemaTool string `yaml:"schema_tool" json:"schema_tool"`

	// SkipInstall skips dependency installation during `new`.
	SkipInstall bool `yaml:"skip_install" json:"skip_install"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// DefaultConfigDir is where panelforge.yml lives unless
// PANELFORGE_CONFIG_PATH points elsewhere.
func DefaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "panelforge")
	}

	return "."
}

// newDefault returns a config with default values
func newDefault() *PanelConfig {
	return &PanelConfig{
		DefaultDatabase:       project.DatabaseSqlite.String(),
		DefaultPackageManager: project.PackageManagerNpm.String(),
		DefaultPort:           project.DefaultPort,
		SchemaTool:            "npx",
		SkipInstall:           false,
		sources:               make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*PanelConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("PANELFORGE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigDir()
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig PanelConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"default_database", "default_package_manager", "default_port",
		"schema_tool", "skip_install",
	}
}

func (c *PanelConfig) applyFileConfig(file *PanelConfig) {
	if file.DefaultDatabase != "" {
		c.DefaultDatabase = file.DefaultDatabase
		c.sources["default_database"] = "file"
	}
	if file.DefaultPackageManager != "" {
		c.DefaultPackageManager = file.DefaultPackageManager
		c.sources["default_package_manager"] = "file"
	}
	if file.DefaultPort != 0 {
		c.DefaultPort = file.DefaultPort
		c.sources["default_port"] = "file"
	}
	if file.SchemaTool != "" {
		c.SchemaTool = file.SchemaTool
		c.sources["schema_tool"] = "file"
	}
	if file.SkipInstall {
		c.SkipInstall = true
		c.sources["skip_install"] = "file"
	}
}

func (c *PanelConfig) applyEnvConfig() {
	if val := os.Getenv("PANELFORGE_DEFAULT_DATABASE"); val != "" {
		c.DefaultDatabase = val
		c.sources["default_database"] = "environment"
	}
	if val := os.Getenv("PANELFORGE_DEFAULT_PACKAGE_MANAGER"); val != "" {
		c.DefaultPackageManager = val
		c.sources["default_package_manager"] = "environment"
	}
	if val := os.Getenv("PANELFORGE_DEFAULT_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.DefaultPort = i
			c.sources["default_port"] = "environment"
		}
	}
	if val := os.Getenv("PANELFORGE_SCHEMA_TOOL"); val != "" {
		c.SchemaTool = val
		c.sources["schema_tool"] = "environment"
	}
	if val := os.Getenv("PANELFORGE_SKIP_INSTALL"); val != "" {
		c.SkipInstall = val == "true" || val == "1"
		c.sources["skip_install"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *PanelConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *PanelConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}

	return "default"
}

// Database returns the default database as its enum value.
func (c *PanelConfig) Database() (project.Database, error) {
	return project.DatabaseString(c.DefaultDatabase)
}

// PackageManager returns the default package manager as its enum value.
func (c *PanelConfig) PackageManager() (project.PackageManager, error) {
	return project.PackageManagerString(c.DefaultPackageManager)
}

// Validate validates the configuration
func (c *PanelConfig) Validate() error {
	if _, err := c.Database(); err != nil {
		return fmt.Errorf("invalid default_database: %s", c.DefaultDatabase)
	}
	if _, err := c.PackageManager(); err != nil {
		return fmt.Errorf("invalid default_package_manager: %s", c.DefaultPackageManager)
	}
	if c.DefaultPort < 1 || c.DefaultPort > 65535 {
		return fmt.Errorf("invalid default_port: %d", c.DefaultPort)
	}
	if c.SchemaTool == "" {
		return fmt.Errorf("schema_tool must not be empty")
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *PanelConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "default_database", Value: c.DefaultDatabase, Source: c.Source("default_database")},
		{Name: "default_package_manager", Value: c.DefaultPackageManager, Source: c.Source("default_package_manager")},
		{Name: "default_port", Value: strconv.Itoa(c.DefaultPort), Source: c.Source("default_port")},
		{Name: "schema_tool", Value: c.SchemaTool, Source: c.Source("schema_tool")},
		{Name: "skip_install", Value: strconv.FormatBool(c.SkipInstall), Source: c.Source("skip_install")},
	}
}

// FormatText returns a text representation of the configuration
func (c *PanelConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", attr.Name, value, attr.Source))
	}

	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *PanelConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
