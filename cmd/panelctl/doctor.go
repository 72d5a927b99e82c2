package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/toolchain"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external toolchain is installed",
	Long: `Check that the external toolchain is installed.

Probes PATH for the Node runtime and the package managers panelctl can
drive, and reports what it found. Exits non-zero when a required tool
is missing.

Example:
  panelctl doctor`,
	Run: func(cmd *cobra.Command, args []string) {
		probes := toolchain.Doctor(toolchain.ExecRunner{})

		for _, probe := range probes {
			requirement := "required"
			if !probe.Tool.Required {
				requirement = "optional"
			}
			location := "not found"
			if probe.Found {
				location = probe.Path
			}
			fmt.Printf("%-8s %-10s %-40s %s\n", probe.Tool.Name, requirement, location, probe.Version)
		}

		if missing := toolchain.MissingRequired(probes); len(missing) > 0 {
			fmt.Fprintf(os.Stderr, "\nMissing required tools: %s\n", strings.Join(missing, ", "))
			os.Exit(1)
		}

		fmt.Println("\nAll required tools are available")
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
