package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"journeylens/internal/config"
	"journeylens/internal/specdoc"
)

func newSpecCommand() *cobra.Command {
	specCmd := &cobra.Command{
		Use:   "spec",
		Short: "Specification document utilities",
	}
	specCmd.AddCommand(newSpecSampleCommand())
	return specCmd
}

func newSpecSampleCommand() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:         "sample",
		Short:       "Print a sample specification document",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			body := specdoc.Sample()
			if strings.TrimSpace(outputFlag) == "" {
				_, err := cmd.OutOrStdout().Write(body)
				return err
			}
			target, err := config.ExpandPath(outputFlag)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := os.WriteFile(target, body, 0o644); err != nil {
				return fmt.Errorf("write sample spec: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample specification to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the sample to a file instead of stdout")
	return cmd
}
