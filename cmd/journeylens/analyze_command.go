package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"journeylens/internal/analysis"
	"journeylens/internal/config"
	"journeylens/internal/deps"
	"journeylens/internal/logging"
	"journeylens/internal/media/frames"
	"journeylens/internal/ocr"
	"journeylens/internal/report"
	"journeylens/internal/runs"
	"journeylens/internal/services"
)

const (
	resultFileName = "analysis_result.json"
	reportFileName = "analysis_report.md"
	lockFileName   = ".journeylens.lock"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var samplingFlag float64
	var thresholdFlag float64
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze <video> <spec>",
		Short: "Analyze a screen recording against a specification document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			videoPath, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve video path: %w", err)
			}
			specPath, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve spec path: %w", err)
			}

			outputDir := cfg.Paths.OutputDir
			if strings.TrimSpace(outputFlag) != "" {
				if outputDir, err = config.ExpandPath(outputFlag); err != nil {
					return fmt.Errorf("resolve output dir: %w", err)
				}
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			if missing := deps.MissingRequired(deps.CheckBinaries(deps.Requirements(cfg))); len(missing) > 0 {
				return services.Wrap(services.ErrConfiguration, "preflight", "check binaries",
					fmt.Sprintf("missing %s (run `journeylens deps`)", strings.Join(missing, ", ")), nil)
			}

			lock := flock.New(filepath.Join(outputDir, lockFileName))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire output lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another analysis is already writing to %s", outputDir)
			}
			defer func() { _ = lock.Unlock() }()

			logger := ctx.logger()

			opts := analysis.Options{
				SamplingFPS:           cfg.Analysis.SamplingFPS,
				ChangeThreshold:       cfg.Analysis.ChangeThreshold,
				StuckThresholdSeconds: cfg.Analysis.StuckThresholdSeconds,
				ProgressInterval:      cfg.Analysis.ProgressInterval,
				OutputDir:             outputDir,
			}
			if samplingFlag > 0 {
				opts.SamplingFPS = samplingFlag
			}
			if thresholdFlag > 0 {
				opts.ChangeThreshold = thresholdFlag
			}

			source := &frames.FFmpegSource{
				FFmpeg:  cfg.Tools.FFmpeg,
				FFprobe: cfg.Tools.FFprobe,
			}
			engine := &ocr.Tesseract{
				Binary:      cfg.OCR.Binary,
				PageSegMode: cfg.OCR.PageSegMode,
				Timeout:     time.Duration(cfg.OCR.TimeoutSeconds) * time.Second,
			}
			extractor := ocr.NewExtractor(engine, ocr.DefaultVocabulary(), logger)
			analyzer := analysis.New(opts, source, extractor, logger)

			runCtx := cmd.Context()
			if cfg.Tools.DecodeTimeoutSeconds > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(runCtx, time.Duration(cfg.Tools.DecodeTimeoutSeconds)*time.Second)
				defer cancel()
			}

			result, runErr := analyzer.Run(runCtx, videoPath, specPath)

			resultPath, reportPath, writeErr := writeArtifacts(outputDir, result)
			if writeErr != nil {
				logger.Warn("analysis artifacts not fully written", logging.Error(writeErr))
			}
			recordRun(cfg, logger, videoPath, specPath, result, runErr, resultPath, reportPath)

			if runErr != nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}
			printSummary(out, result, resultPath, reportPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for key frames, result JSON, and the report")
	cmd.Flags().Float64Var(&samplingFlag, "sampling-fps", 0, "Frames per second of video to analyze")
	cmd.Flags().Float64Var(&thresholdFlag, "change-threshold", 0, "Pixel-change fraction that marks a key frame")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full result document as JSON")
	return cmd
}

func writeArtifacts(outputDir string, result *analysis.Result) (string, string, error) {
	resultPath := filepath.Join(outputDir, resultFileName)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(resultPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("write result: %w", err)
	}

	reportPath := filepath.Join(outputDir, reportFileName)
	if err := os.WriteFile(reportPath, []byte(report.Render(result)), 0o644); err != nil {
		return resultPath, "", fmt.Errorf("write report: %w", err)
	}
	return resultPath, reportPath, nil
}

func recordRun(cfg *config.Config, logger *slog.Logger, videoPath, specPath string, result *analysis.Result, runErr error, resultPath, reportPath string) {
	if !cfg.History.Enabled {
		return
	}
	store, err := runs.Open(cfg)
	if err != nil {
		logger.Warn("run history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	run := runs.NewRun(videoPath, specPath, result, runErr)
	run.ResultPath = resultPath
	run.ReportPath = reportPath
	if err := store.Save(context.Background(), run); err != nil {
		logger.Warn("run not recorded", logging.Error(err))
	}
}

func printSummary(out io.Writer, result *analysis.Result, resultPath, reportPath string) {
	rows := [][]string{}
	if result.VideoInfo != nil {
		rows = append(rows,
			[]string{"Duration", fmt.Sprintf("%.1fs", result.VideoInfo.Duration)},
			[]string{"Processed frames", fmt.Sprintf("%d", result.VideoInfo.ProcessedFrames)},
		)
	}
	if result.Summary != nil {
		rows = append(rows,
			[]string{"Key frames", fmt.Sprintf("%d", result.Summary.KeyFramesDetected)},
			[]string{"Transitions", fmt.Sprintf("%d", result.Summary.TransitionsDetected)},
			[]string{"Journey steps", fmt.Sprintf("%d", result.Summary.JourneySteps)},
			[]string{"Issues", fmt.Sprintf("%d", result.Summary.IssuesFound)},
		)
	}
	if result.Comparison != nil {
		rows = append(rows,
			[]string{"Spec coverage", fmt.Sprintf("%.1f%%", result.Comparison.SpecCoverage*100)},
			[]string{"Overall score", fmt.Sprintf("%.1f%%", result.Comparison.OverallScore*100)},
		)
	}
	fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
	fmt.Fprintf(out, "Result: %s\n", resultPath)
	fmt.Fprintf(out, "Report: %s\n", reportPath)
}
