package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the knowledge base",
	Long: `Queries the knowledge base for indexed documentation matching the
query. Search is advisory: a failed or unreachable service yields an
empty result rather than an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCmd,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	if err := initialiseServices(false); err != nil {
		return err
	}
	if knowledgeBase == nil {
		return errors.New("knowledge base not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := knowledgeBase.Search(ctx, args[0], searchLimit)
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, result := range results {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, result.ID, result.Score)
		if path, ok := result.Metadata["file_path"].(string); ok && path != "" {
			cmd.Printf("      Path: %s\n", path)
		}
		if snippet := firstLine(result.Content); snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
		cmd.Println()
	}
	return nil
}

// firstLine returns the first non-empty line of s, truncated to 80
// runes.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > 80 {
			return string(runes[:77]) + "..."
		}
		return line
	}
	return ""
}
