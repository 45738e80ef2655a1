package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// healthCmd checks the backend health endpoint
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the backend status",
	Long: `Query the backend's health endpoint and report whether the
service, its database connection, and the document index are up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		spin := newSpinner("Checking backend")
		spin.start()

		status, err := client.Health(context.Background())
		if err != nil {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Health check failed"))
			return fmt.Errorf("health check failed: %w", err)
		}
		spin.stopWithSuccess("Backend reachable")

		okStyle := lipgloss.NewStyle().Foreground(colorSuccess)
		badStyle := lipgloss.NewStyle().Foreground(colorErr)
		dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

		mark := func(ok bool) string {
			if ok {
				return okStyle.Render("✓")
			}
			return badStyle.Render("✗")
		}

		fmt.Printf("%s %s %s\n", mark(status.Status == "healthy"),
			dimStyle.Render("Status:"), status.Status)
		fmt.Printf("%s %s %v\n", mark(status.DatabaseConnected),
			dimStyle.Render("Database connected:"), status.DatabaseConnected)
		fmt.Printf("%s %s %v\n", mark(status.DocumentsLoaded),
			dimStyle.Render("Documents loaded:"), status.DocumentsLoaded)

		if !status.Healthy() {
			return fmt.Errorf("backend is not fully healthy")
		}
		return nil
	},
}
