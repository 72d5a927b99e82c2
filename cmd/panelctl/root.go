package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "panelctl",
	Short: "Scaffold and manage Express admin panels",
	Long:  `panelctl scaffolds Express + EJS + Prisma admin panels and manages the projects it creates.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
