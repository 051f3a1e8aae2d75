package deps

import (
	"testing"

	"journeylens/internal/testsupport"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "Shell", Command: "sh"},
		{Name: "Ghost", Command: "definitely-not-a-real-binary-xyz"},
		{Name: "Blank", Command: "  "},
	})
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("expected sh to be available: %+v", statuses[0])
	}
	if statuses[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Fatalf("unexpected blank status: %+v", statuses[2])
	}
}

func TestMissingRequiredSkipsOptional(t *testing.T) {
	statuses := []Status{
		{Command: "a", Available: false, Optional: true},
		{Command: "b", Available: false},
		{Command: "c", Available: true},
	}
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0] != "b" {
		t.Fatalf("unexpected missing set: %v", missing)
	}
}

func TestCheckBinariesWithStubbedTools(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	statuses := CheckBinaries(Requirements(cfg))
	if missing := MissingRequired(statuses); len(missing) != 0 {
		t.Fatalf("stubbed binaries should all resolve, missing %v", missing)
	}
}

func TestRequirementsUsesConfiguredCommands(t *testing.T) {
	reqs := Requirements(nil)
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requirements, got %d", len(reqs))
	}
	for _, req := range reqs {
		if req.Optional {
			t.Fatalf("all analyzer binaries are required: %+v", req)
		}
	}
}
