package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"journeylens/internal/analysis"
	"journeylens/internal/config"
	"journeylens/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:         "report <result.json>",
		Short:       "Render a markdown report from a saved result document",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve result path: %w", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read result: %w", err)
			}
			var result analysis.Result
			if err := json.Unmarshal(data, &result); err != nil {
				return fmt.Errorf("parse result: %w", err)
			}

			body := report.Render(&result)
			if strings.TrimSpace(outputFlag) == "" {
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}
			target, err := config.ExpandPath(outputFlag)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the report to a file instead of stdout")
	return cmd
}
