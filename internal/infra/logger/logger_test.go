package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, ".twolink", "logs", "twolink.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	L().Debug("query.solved", "name", "demo")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), b)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "query.solved" || entry["name"] != "demo" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["source"]; !ok {
		t.Fatalf("expected source attribute in debug mode")
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	path := Path()
	L().Debug("hidden")
	_ = cleanup()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(b), "hidden") {
		t.Fatalf("debug entry should not be written at info level:\n%s", b)
	}
}

func TestL_DiscardByDefault(t *testing.T) {
	if L() == nil {
		t.Fatalf("expected non-nil logger")
	}
	if Path() != "" {
		t.Fatalf("expected no log path before Setup, got %q", Path())
	}
}
