package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/sopchat/internal/tui"
)

// chatCmd starts the interactive chat session
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive terminal chat with the knowledge base.

The session keeps the full transcript on screen. One question is in
flight at a time; input is held until the current answer arrives.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		if err := tui.RunChat(client, client.BaseURL()); err != nil {
			return fmt.Errorf("chat session failed: %w", err)
		}
		return nil
	},
}
