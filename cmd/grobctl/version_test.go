package main

import (
	"runtime"
	"testing"
)

func TestVersionText(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	out, err := captureOutput(t, runVersion)
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	assertContains(t, out, []string{"grobctl dev", "engine:", runtime.Version(), runtime.GOOS})
}

func TestVersionJSON(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	jsonOut = true

	out, err := captureOutput(t, runVersion)
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	result := decodeJSON(t, out)
	if result["version"] != "dev" {
		t.Errorf("version = %v, want dev", result["version"])
	}
	if result["go"] != runtime.Version() {
		t.Errorf("go = %v, want %s", result["go"], runtime.Version())
	}
	if result["platform"] != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("platform = %v", result["platform"])
	}
}

func TestBuildInfoString(t *testing.T) {
	got := buildInfo{Version: "1.2.0", Engine: "v1.2.0", Revision: "abc123", Go: "go1.25.3", Platform: "linux/amd64"}.String()
	want := "grobctl 1.2.0\n  engine: v1.2.0\n  revision: abc123\n  go: go1.25.3 (linux/amd64)"
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
