package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// loadDocumentsCmd triggers (re)indexing of the backend's document folder
var loadDocumentsCmd = &cobra.Command{
	Use:   "load-documents",
	Short: "Load and index the backend's document folder",
	Long: `Ask the backend to read its document folder, chunk the files,
and index them for retrieval. Safe to run repeatedly; the backend
replaces the previous index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		spin := newSpinner("Indexing documents")
		spin.start()

		result, err := client.LoadDocuments(context.Background())
		if err != nil {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Document loading failed"))
			return fmt.Errorf("document loading failed: %w", err)
		}
		spin.stopWithSuccess(result.Message)

		dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)
		fmt.Printf("%s %d\n", dimStyle.Render("Files processed:"), result.FilesProcessed)
		fmt.Printf("%s %d\n", dimStyle.Render("Chunks indexed:"), result.ChunksProcessed)
		return nil
	},
}
