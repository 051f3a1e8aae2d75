package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupCLITestEnv(t *testing.T) {
	t.Helper()
	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(base); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err = runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
}

func TestSpecSampleCommand(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "spec", "sample")
	if err != nil {
		t.Fatalf("spec sample: %v", err)
	}
	requireContains(t, out, "user_flows")

	target := filepath.Join(t.TempDir(), "spec.json")
	if _, err := runCLI(t, "spec", "sample", "--output", target); err != nil {
		t.Fatalf("spec sample to file: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample spec at %s: %v", target, err)
	}
}

func TestReportCommandRendersSavedResult(t *testing.T) {
	setupCLITestEnv(t)

	resultPath := filepath.Join(t.TempDir(), "analysis_result.json")
	body := `{
		"video_info": {"path": "demo.mp4", "duration": 4, "fps": 30, "total_frames": 120, "processed_frames": 4},
		"analysis_summary": {"key_frames_detected": 2, "transitions_detected": 1, "journey_steps": 2, "issues_found": 0},
		"user_journey": {"steps": ["Started at: Login"], "total_duration": 4},
		"spec_comparison": {"spec_coverage": 1, "overall_score": 1}
	}`
	if err := os.WriteFile(resultPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write result: %v", err)
	}

	out, err := runCLI(t, "report", resultPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireContains(t, out, "# Screen Recording Analysis Report")
	requireContains(t, out, "Started at: Login")
}

func TestReportCommandRejectsMalformedResult(t *testing.T) {
	setupCLITestEnv(t)

	resultPath := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(resultPath, []byte("{"), 0o644); err != nil {
		t.Fatalf("write result: %v", err)
	}
	if _, err := runCLI(t, "report", resultPath); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestRunsListEmpty(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "runs", "list")
	if err != nil {
		t.Fatalf("runs list: %v", err)
	}
	requireContains(t, out, "No runs recorded yet.")
}
