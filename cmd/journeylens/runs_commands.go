package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"journeylens/internal/runs"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect past analysis runs",
	}
	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := runs.Open(cfg)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			listed, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(listed) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(listed))
			for _, run := range listed {
				status := string(run.Status)
				if run.Status == runs.StatusFailed && run.ErrorCategory != "" {
					status = fmt.Sprintf("%s (%s)", run.Status, run.ErrorCategory)
				}
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Local().Format(time.DateTime),
					run.VideoPath,
					status,
					fmt.Sprintf("%.1f%%", run.OverallScore*100),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Created", "Video", "Status", "Score"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one recorded run in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := runs.Open(cfg)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			run, err := store.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows := [][]string{
				{"ID", run.ID},
				{"Created", run.CreatedAt.Local().Format(time.DateTime)},
				{"Video", run.VideoPath},
				{"Spec", run.SpecPath},
				{"Status", string(run.Status)},
			}
			if run.Status == runs.StatusFailed {
				rows = append(rows,
					[]string{"Error category", run.ErrorCategory},
					[]string{"Error", run.ErrorMessage})
			} else {
				rows = append(rows,
					[]string{"Processed frames", fmt.Sprintf("%d", run.ProcessedFrames)},
					[]string{"Key frames", fmt.Sprintf("%d", run.KeyFrames)},
					[]string{"Transitions", fmt.Sprintf("%d", run.Transitions)},
					[]string{"Issues", fmt.Sprintf("%d", run.Issues)},
					[]string{"Spec coverage", fmt.Sprintf("%.1f%%", run.SpecCoverage*100)},
					[]string{"Overall score", fmt.Sprintf("%.1f%%", run.OverallScore*100)},
					[]string{"Result", run.ResultPath},
					[]string{"Report", run.ReportPath})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}
