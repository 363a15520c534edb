package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var rmAll bool

var rmCmd = &cobra.Command{
	Use:   "rm [doc-id]",
	Short: "Remove documents from the collection",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().BoolVar(&rmAll, "all", false, "Remove every stored document")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	if rmAll {
		removed, err := documentService.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("clearing documents: %w", err)
		}
		cmd.Printf("Removed %d document(s).\n", removed)
		return nil
	}

	if len(args) == 0 {
		return errors.New("provide a document ID or --all")
	}

	if err := documentService.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("removing document: %w", err)
	}
	cmd.Printf("Removed %s.\n", args[0])
	return nil
}
