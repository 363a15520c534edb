package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

var resultsCmd = &cobra.Command{
	Use:   "results [job-id]",
	Short: "Show the result of an analysis job on a running server",
	Long: `Fetches an analysis job from a running docsim server and prints its
result. Jobs live in the serving process, so this command queries the
API started by 'docsim serve'.`,
	Args: cobra.ExactArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagServer, "server", "",
		"Server address (default from config api.listen)")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	job, err := newAPIClient().getJob(args[0])
	if err != nil {
		return fmt.Errorf("fetching job: %w", err)
	}

	switch domain.JobStatus(job.Status) {
	case domain.JobStatusPending, domain.JobStatusRunning:
		cmd.Printf("Job %s is %s. Try again shortly.\n", job.JobID, job.Status)
		return nil
	case domain.JobStatusFailed:
		return fmt.Errorf("analysis failed: %s", job.ErrorMessage)
	}

	printRemoteResult(cmd, job)
	return nil
}

// printRemoteResult renders a completed job fetched over the API, in
// the same layout as a local analysis report.
func printRemoteResult(cmd *cobra.Command, job *jobView) {
	flaggedColor := color.New(color.FgRed, color.Bold)
	okColor := color.New(color.FgGreen)
	header := color.New(color.Bold)

	header.Fprintln(cmd.OutOrStdout(), "Similarity Report")
	cmd.Println()

	if len(job.SimilarPairs) == 0 {
		cmd.Println("  No pairs to report.")
	}
	for _, p := range job.SimilarPairs {
		if p.Flagged {
			flaggedColor.Fprintf(cmd.OutOrStdout(), "  %6s  %s <-> %s  [FLAGGED]\n", p.Percentage, p.Doc1, p.Doc2)
		} else {
			okColor.Fprintf(cmd.OutOrStdout(), "  %6s  %s <-> %s\n", p.Percentage, p.Doc1, p.Doc2)
		}
	}

	cmd.Println()
	header.Fprintln(cmd.OutOrStdout(), "Summary")
	cmd.Printf("  Documents:    %d\n", job.TotalDocuments)
	cmd.Printf("  Comparisons:  %d\n", job.TotalComparisons)
	if s := job.Statistics; s != nil {
		cmd.Printf("  Flagged:      %d\n", s.FlaggedCount)
		cmd.Printf("  Average:      %.4f\n", s.AverageSimilarity)
		cmd.Printf("  Range:        %.4f - %.4f\n", s.MinSimilarity, s.MaxSimilarity)
	}
	if job.ProcessingTime != "" {
		cmd.Printf("  Elapsed:      %s\n", job.ProcessingTime)
	}
}
