package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/project"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for a generated app to be ready",
	Long: `Wait for a generated app to be ready by polling it over HTTP.

This command repeatedly requests the app's root URL until it responds
successfully or the maximum number of retries is reached. Useful after
starting the dev server in scripts.

Example:
  panelctl wait
  panelctl wait --port 3000 --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		retries, _ := cmd.Flags().GetInt("retries")

		if err := waitForApp(port, retries); err != nil {
			fmt.Fprintf(os.Stderr, "App did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("port", "p", project.DefaultPort, "App port to check")
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForApp(port, retries int) error {
	url := fmt.Sprintf("http://localhost:%d/", port)
	client := &http.Client{Timeout: 2 * time.Second}

	fmt.Println("Waiting for the app to be ready...")

	for i := 0; i < retries; i++ {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 500 {
				fmt.Println()
				fmt.Println("App is ready!")
				return nil
			}
		}

		fmt.Print(".")
		time.Sleep(1 * time.Second)
	}

	fmt.Println()
	return fmt.Errorf("app is not ready after %d seconds", retries)
}
