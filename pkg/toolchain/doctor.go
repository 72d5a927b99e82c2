package toolchain

import (
	"strings"
)

// A Tool is an external command the installer depends on or can use.
type Tool struct {
	Name     string
	Required bool
}

// Tools lists everything Doctor probes for. The Node runtime and npm
// are hard requirements; alternative package managers are optional.
var Tools = []Tool{
	{Name: "node", Required: true},
	{Name: "npm", Required: true},
	{Name: "npx", Required: true},
	{Name: "pnpm"},
	{Name: "yarn"},
}

// A Probe records what Doctor found for one tool.
type Probe struct {
	Tool    Tool
	Path    string
	Version string
	Found   bool
}

// Doctor looks up each known tool on PATH and asks the ones it finds
// for their version.
func Doctor(runner Runner) []Probe {
	probes := make([]Probe, 0, len(Tools))
	for _, tool := range Tools {
		probe := Probe{Tool: tool}

		path, err := runner.LookPath(tool.Name)
		if err == nil {
			probe.Found = true
			probe.Path = path

			out, err := runner.Output("", tool.Name, "--version")
			if err == nil {
				probe.Version = strings.TrimSpace(string(out))
			}
		}

		probes = append(probes, probe)
	}

	return probes
}

// MissingRequired returns the names of required tools that were not
// found, in probe order.
func MissingRequired(probes []Probe) []string {
	var missing []string
	for _, probe := range probes {
		if probe.Tool.Required && !probe.Found {
			missing = append(missing, probe.Tool.Name)
		}
	}

	return missing
}
