package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apppkg "github.com/hyperifyio/gotimeline/internal/app"
	"github.com/hyperifyio/gotimeline/internal/pptx/pptxtest"
)

// Smoke test: run converts the conventional input and prints a status line.
func TestRun_WritesStatusLine(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "History"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	pptxtest.Write(t, filepath.Join(root, "History", "Timeline.pptx"),
		pptxtest.Slide{Title: "History", Body: []string{"1999 - Founded", "2005 - Expanded abroad"}},
	)

	var out bytes.Buffer
	if err := run(context.Background(), apppkg.Config{Root: root}, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	line := out.String()
	if strings.Count(line, "\n") != 1 {
		t.Fatalf("expected a single line, got %q", line)
	}
	var status struct {
		OK          bool   `json:"ok"`
		JSON        string `json:"json"`
		HistoryLen  int    `json:"history_len"`
		EventsCount int    `json:"events_count"`
	}
	if err := json.Unmarshal([]byte(line), &status); err != nil {
		t.Fatalf("status is not json: %v", err)
	}
	want := filepath.Join(root, "History", "timeline_extracted.json")
	if !status.OK || status.JSON != want || status.EventsCount != 2 {
		t.Fatalf("unexpected status %+v", status)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

// A missing input is reported on stdout and is not an error.
func TestRun_MissingInputPrintsError(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer
	if err := run(context.Background(), apppkg.Config{Root: root}, &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("error line is not json: %v", err)
	}
	msg, _ := payload["error"].(string)
	if !strings.HasPrefix(msg, "PPT not found at ") || !strings.HasSuffix(msg, filepath.Join("History", "Timeline.pptx")) {
		t.Fatalf("unexpected error message %q", msg)
	}
	if len(payload) != 1 {
		t.Fatalf("expected only the error key, got %v", payload)
	}
	if _, err := os.Stat(filepath.Join(root, "History", "timeline_extracted.json")); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err=%v", err)
	}
}

func TestRun_CorruptInputIsFatal(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.pptx")
	if err := os.WriteFile(in, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	err := run(context.Background(), apppkg.Config{Root: dir, InputPath: in, OutputPath: "out.json"}, &out)
	if err == nil {
		t.Fatalf("expected error for corrupt input")
	}
	if out.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", out.String())
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a.env, ,b.env,")
	if len(got) != 2 || got[0] != "a.env" || got[1] != "b.env" {
		t.Fatalf("unexpected list %v", got)
	}
	if len(splitList("")) != 0 {
		t.Fatalf("expected empty list")
	}
}
