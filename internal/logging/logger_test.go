package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"wordfreq/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "analysis")
	logger.Info("sample file created", logging.String("path", "/tmp/sample.txt"), logging.Int("bytes", 42))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("expected level label in output: %q", line)
	}
	if !strings.Contains(line, "[analysis]") {
		t.Fatalf("expected component tag in output: %q", line)
	}
	if !strings.Contains(line, "sample file created") {
		t.Fatalf("expected message in output: %q", line)
	}
	if !strings.Contains(line, "path=/tmp/sample.txt") || !strings.Contains(line, "bytes=42") {
		t.Fatalf("expected attrs in output: %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no ANSI sequences when writer is not a terminal: %q", line)
	}
}

func TestConsoleHandlerQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("notice", logging.String("reason", "no words matched"))
	if !strings.Contains(buf.String(), `reason="no words matched"`) {
		t.Fatalf("expected quoted attr value: %q", buf.String())
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("dropped")
	logger.Debug("dropped too")
	if buf.Len() != 0 {
		t.Fatalf("expected records below warn to be dropped, got %q", buf.String())
	}

	logger.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected error record to pass the filter: %q", buf.String())
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("analysis complete", logging.Int("unique_words", 5))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "analysis complete" {
		t.Fatalf("unexpected msg field: %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("unexpected level field: %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("expected ts field in JSON output")
	}
	if record["unique_words"] != float64(5) {
		t.Fatalf("unexpected unique_words field: %v", record["unique_words"])
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("ignored", logging.Error(nil))
}
