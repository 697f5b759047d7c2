package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelWarn), WithTimeLayout(""))

	l.Debug("dropped")
	l.Info("dropped too")
	l.Warn("kept")
	l.Error("also kept")

	out := buf.String()

	if strings.Contains(out, "dropped") {
		t.Errorf("messages below level leaked: %q", out)
	}

	if !strings.Contains(out, "kept") || !strings.Contains(out, "also kept") {
		t.Errorf("messages at or above level missing: %q", out)
	}
}

func TestMake_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo))
	l.Info("structured", slog.String("key", "value"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if record["msg"] != "structured" || record["key"] != "value" {
		t.Errorf("record = %v", record)
	}
}

func TestMake_TimeLayoutDisabled(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithTimeLayout(""), WithLevel(LevelInfo))
	l.Info("no timestamp")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("timestamp present despite empty layout: %q", buf.String())
	}
}

func TestZeroLogger_Discards(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Error("into the void")

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Error("zero logger does not report defaults")
	}
}

func TestWrap_Overrides(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("wrapped logger kept the base level: %q", buf.String())
	}

	if base.Level() != LevelError {
		t.Error("wrapping mutated the base logger")
	}
}

func TestWith_Attrs(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelInfo)).With(slog.String("tool", "uuencode"))
	l.Info("tagged")

	if !strings.Contains(buf.String(), "uuencode") {
		t.Errorf("attached attribute missing: %q", buf.String())
	}
}

func TestPrettyHandler_Writes(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(true), WithLevel(LevelInfo), WithTimeLayout(""))
	l.Info("colorized", slog.Int("n", 3))

	out := buf.String()

	if !strings.Contains(out, "colorized") || !strings.Contains(out, "n=") {
		t.Errorf("pretty output missing content: %q", out)
	}
}
