package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [files...]",
	Short: "Add documents to the collection",
	Long: `Reads one or more plain text files and stores them in the collection.
The file name becomes the document name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	added := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		doc, err := documentService.Add(ctx, filepath.Base(path), string(data))
		if err != nil {
			return fmt.Errorf("adding %s: %w", path, err)
		}

		cmd.Printf("Added %s (%s, %d words)\n", doc.Name, doc.ID, doc.WordCount)
		added++
	}

	cmd.Printf("\n%d document(s) added.\n", added)
	return nil
}
