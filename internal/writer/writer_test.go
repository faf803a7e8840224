package writer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
	"github.com/nguyentantai21042004/guide-transcriber/internal/steps"
)

func testResult(found []steps.Step) *model.Result {
	now := time.Date(2026, 10, 18, 9, 30, 15, 0, time.UTC)
	return model.NewResult(
		`Ten Rules: "Work & Life"?`,
		"https://www.youtube.com/watch?v=abc123",
		"abc123",
		"Rule number one is Focus. Do one thing.",
		"Focus matters.",
		found,
		now,
	)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "My Video", "My Video"},
		{"invalid chars", `a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"trimmed", "  spaced  ", "spaced"},
		{"empty", "???", "video"},
		{"long", strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "transcripts")
	found := []steps.Step{{Number: 1, Title: "Focus", Content: "Do one thing."}}

	out, err := New(dir, false, logger.NewNop()).Write(context.Background(), testResult(found))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	wantBase := filepath.Join(dir, "Ten Rules Work & Life_20261018_093015")
	if out.JSONPath != wantBase+".json" {
		t.Errorf("JSONPath = %q, want %q", out.JSONPath, wantBase+".json")
	}
	if out.DocxPath != "" {
		t.Errorf("DocxPath = %q, want empty when disabled", out.DocxPath)
	}

	data, err := os.ReadFile(out.JSONPath)
	if err != nil {
		t.Fatalf("Failed to read JSON: %v", err)
	}
	if !strings.Contains(string(data), `"title": "Ten Rules: \"Work & Life\"?"`) {
		t.Errorf("JSON is not indented or escapes HTML:\n%s", data)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	for _, key := range []string{"title", "url", "video_id", "timestamp", "transcript", "key_points", "transcript_length", "key_points_length", "steps"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}
	stepList, ok := doc["steps"].([]interface{})
	if !ok || len(stepList) != 1 {
		t.Fatalf("steps = %v, want one entry", doc["steps"])
	}
	step := stepList[0].(map[string]interface{})
	if step["number"] != float64(1) || step["title"] != "Focus" || step["content"] != "Do one thing." {
		t.Errorf("step = %v", step)
	}

	text, err := os.ReadFile(out.TextPath)
	if err != nil {
		t.Fatalf("Failed to read text report: %v", err)
	}
	report := string(text)
	for _, want := range []string{reportTitle, "Date: 2026-10-18 09:30:15", sectionKeyPoints, sectionGuide, "STEP 1: FOCUS\nDo one thing.", sectionTranscript} {
		if !strings.Contains(report, want) {
			t.Errorf("text report missing %q", want)
		}
	}
	if strings.Index(report, sectionGuide) > strings.Index(report, sectionTranscript) {
		t.Error("PRACTICAL GUIDE should come before FULL TRANSCRIPT")
	}
}

func TestWriteWithoutSteps(t *testing.T) {
	dir := t.TempDir()

	out, err := New(dir, false, logger.NewNop()).Write(context.Background(), testResult(nil))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	text, err := os.ReadFile(out.TextPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(text), sectionGuide) {
		t.Error("PRACTICAL GUIDE rendered without steps")
	}

	data, err := os.ReadFile(out.JSONPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"steps": []`) {
		t.Errorf("empty steps should encode as [], got:\n%s", data)
	}
}

func TestWriteDocx(t *testing.T) {
	dir := t.TempDir()
	found := []steps.Step{{Number: 2, Title: "Speed", Content: "Move fast."}}
	result := testResult(found)
	result.KeyPoints = "## Summary\n- **Focus** first\n- Then speed"

	out, err := New(dir, true, logger.NewNop()).Write(context.Background(), result)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(out.DocxPath)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx is empty")
	}
}
