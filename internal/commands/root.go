// Package commands provides CLI commands for sopchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/sopchat/internal/api"
	"github.com/diogo/sopchat/internal/config"
	"github.com/diogo/sopchat/internal/logging"
)

var (
	// Global flags
	baseURLFlag string
	topKFlag    int
	verboseFlag bool
	outputFlag  string
	fileFlag    string
	rawFlag     bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sopchat [question]",
	Short: "Terminal client for the SOP RAG Agent API",
	Long: `sopchat is a terminal client for a retrieval-augmented-generation
backend. It sends your question to the backend's /query endpoint and
renders the answer together with the documents it was grounded on.

Examples:
  sopchat chat                          Start interactive chat
  sopchat "What is the return policy?"  Ask a single question
  sopchat -f question.md                Read question from file
  cat question.md | sopchat             Read question from stdin
  sopchat "Hello" -o answer.md          Save answer to file
  sopchat health                        Check the backend
  sopchat load-documents                (Re)index the document folder`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, _ := config.LoadConfig()
		_ = logging.Init(verboseFlag || cfg.Verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("sopchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), rawFlag || !isStdoutTTY())
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), rawFlag || !isStdoutTTY())
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], rawFlag || !isStdoutTTY())
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "",
		"Backend base URL (overrides config and "+config.EnvBaseURL+")")
	rootCmd.PersistentFlags().IntVarP(&topKFlag, "top-k", "k", 0,
		"Number of document chunks to retrieve (default from config)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save answer to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read question from file")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print only the raw answer text")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(loadDocumentsCmd)
	rootCmd.AddCommand(configCmd)
}

// newClient builds the backend client from config and flags
func newClient() (*api.Client, error) {
	cfg, _ := config.LoadConfig()

	baseURL := baseURLFlag
	if baseURL == "" {
		baseURL = config.ResolveBaseURL(cfg)
	}

	topK := cfg.TopK
	if topKFlag > 0 {
		topK = topKFlag
	}

	return api.NewClient(baseURL,
		api.WithTopK(topK),
		api.WithLogger(logging.Logger),
	)
}
