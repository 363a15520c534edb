package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List analysis jobs on a running server",
	RunE:  runJobs,
}

var jobsRmCmd = &cobra.Command{
	Use:   "rm [job-id]",
	Short: "Remove a job record from a running server",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsRm,
}

func init() {
	jobsCmd.PersistentFlags().StringVar(&flagServer, "server", "",
		"Server address (default from config api.listen)")
	jobsCmd.AddCommand(jobsRmCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, _ []string) error {
	jobs, err := newAPIClient().listJobs()
	if err != nil {
		return fmt.Errorf("listing jobs: %w", err)
	}

	if len(jobs) == 0 {
		cmd.Println("No jobs recorded.")
		return nil
	}

	for i := range jobs {
		j := &jobs[i]
		cmd.Printf("  %s\n", j.JobID)
		cmd.Printf("    Status:    %s\n", j.Status)
		cmd.Printf("    Documents: %d\n", j.TotalDocuments)
		cmd.Printf("    Created:   %s\n", j.CreatedAt.Format("2006-01-02 15:04:05"))
		if j.CompletedAt != nil {
			cmd.Printf("    Completed: %s\n", j.CompletedAt.Format("2006-01-02 15:04:05"))
		}
		if j.ErrorMessage != "" {
			cmd.Printf("    Error:     %s\n", j.ErrorMessage)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d job(s)\n", len(jobs))
	return nil
}

func runJobsRm(cmd *cobra.Command, args []string) error {
	if err := newAPIClient().deleteJob(args[0]); err != nil {
		return fmt.Errorf("removing job: %w", err)
	}
	cmd.Printf("Removed job %s.\n", args[0])
	return nil
}
