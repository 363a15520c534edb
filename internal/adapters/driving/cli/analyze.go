package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

var (
	analyzeThreshold   float64
	analyzeFlaggedOnly bool
	analyzeIDs         []string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a similarity analysis over the collection",
	Long: `Compares every pair of stored documents and reports their similarity.
The command waits for the analysis to finish and prints the result.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Float64VarP(&analyzeThreshold, "threshold", "t", 0,
		"Similarity threshold for flagging pairs (0.5 to 1.0)")
	analyzeCmd.Flags().BoolVar(&analyzeFlaggedOnly, "flagged-only", false,
		"Report only pairs at or above the threshold")
	analyzeCmd.Flags().StringSliceVar(&analyzeIDs, "ids", nil,
		"Restrict analysis to these document IDs")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzerService == nil {
		return errors.New("analysis service not configured")
	}

	ctx := context.Background()

	cfg := domain.AnalysisConfig{
		Threshold:       appConfig.Analysis.DefaultThreshold,
		IncludeAllPairs: !analyzeFlaggedOnly,
		DocumentIDs:     analyzeIDs,
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = analyzeThreshold
	}

	jobID, err := analyzerService.Submit(ctx, cfg)
	if err != nil {
		return fmt.Errorf("starting analysis: %w", err)
	}

	job, err := waitForJob(ctx, cmd, jobID)
	if err != nil {
		return err
	}

	if job.Status == domain.JobStatusFailed {
		return fmt.Errorf("analysis failed: %s", job.ErrorMessage)
	}

	printResult(cmd, job)
	return nil
}

// waitForJob polls the job until it reaches a terminal state, showing a
// progress line in the meantime.
func waitForJob(ctx context.Context, cmd *cobra.Command, jobID string) (*domain.AnalysisJob, error) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	started := time.Now()
	for {
		job, err := analyzerService.Status(ctx, jobID)
		if err != nil {
			return nil, fmt.Errorf("checking job status: %w", err)
		}
		if job.Status.Terminal() {
			cmd.Printf("\r")
			return job, nil
		}

		cmd.Printf("\rAnalyzing %d documents... %s (%.0fs)",
			job.TotalDocuments, job.Status, time.Since(started).Seconds())

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// printResult renders a completed analysis: the pair table first,
// flagged pairs highlighted, then the summary block.
func printResult(cmd *cobra.Command, job *domain.AnalysisJob) {
	r := job.Result
	if r == nil {
		cmd.Println("Job completed with no result.")
		return
	}

	flaggedColor := color.New(color.FgRed, color.Bold)
	okColor := color.New(color.FgGreen)
	header := color.New(color.Bold)

	header.Fprintln(cmd.OutOrStdout(), "Similarity Report")
	cmd.Println()

	if len(r.Pairs) == 0 {
		cmd.Println("  No pairs to report.")
	}
	for _, p := range r.Pairs {
		pct := fmt.Sprintf("%5.1f%%", p.Similarity*100)
		if p.Flagged {
			flaggedColor.Fprintf(cmd.OutOrStdout(), "  %s  %s <-> %s  [FLAGGED]\n", pct, p.Doc1Name, p.Doc2Name)
		} else {
			okColor.Fprintf(cmd.OutOrStdout(), "  %s  %s <-> %s\n", pct, p.Doc1Name, p.Doc2Name)
		}
	}

	stats := r.Statistics
	cmd.Println()
	header.Fprintln(cmd.OutOrStdout(), "Summary")
	cmd.Printf("  Documents:    %d\n", stats.TotalDocuments)
	cmd.Printf("  Comparisons:  %d\n", stats.TotalComparisons)
	cmd.Printf("  Flagged:      %d\n", stats.FlaggedCount)
	cmd.Printf("  Average:      %.4f\n", stats.AvgSimilarity)
	cmd.Printf("  Range:        %.4f - %.4f\n", stats.MinSimilarity, stats.MaxSimilarity)
	cmd.Printf("  Elapsed:      %s\n", (time.Duration(stats.ProcessingTimeMs) * time.Millisecond).String())
}
