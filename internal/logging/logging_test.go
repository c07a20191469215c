package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTextLogger(&buf, slog.LevelDebug))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("font fallback", "family", "Nope Sans")

	out := buf.String()
	if !strings.Contains(out, "font fallback") || !strings.Contains(out, "family=\"Nope Sans\"") {
		t.Errorf("unexpected log output: %q", out)
	}
}
