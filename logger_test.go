package ink_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/calligraphy"
	"github.com/gogpu/ink/fit"
)

// captureLogs routes ink's logger into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := ink.Logger()
	t.Cleanup(func() { ink.SetLogger(orig) })

	var buf bytes.Buffer
	ink.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

// records returns the captured lines that carry msg.
func records(buf *bytes.Buffer, msg string) []string {
	var out []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "msg=\""+msg+"\"") {
			out = append(out, line)
		}
	}
	return out
}

func TestLogger_SilentByDefault(t *testing.T) {
	orig := ink.Logger()
	t.Cleanup(func() { ink.SetLogger(orig) })

	tests := []struct {
		name string
		set  func()
	}{
		{"initial", func() {}},
		{"reset with nil", func() {
			ink.SetLogger(slog.Default())
			ink.SetLogger(nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			l := ink.Logger()
			if l == nil {
				t.Fatal("Logger() = nil")
			}
			for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
				if l.Enabled(context.Background(), level) {
					t.Errorf("logger enabled at %v", level)
				}
			}
		})
	}
}

func TestLogger_FitFallback(t *testing.T) {
	buf := captureLogs(t)

	// every parameter lands on an endpoint, so the normal equations are singular
	chord := []ink.Point{ink.Pt(0, 0), ink.Pt(0, 0), ink.Pt(8, 0), ink.Pt(8, 0)}
	curves := fit.FitStroke(chord)
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(curves))
	}

	got := records(buf, "fit: using straight segment")
	if len(got) != 1 {
		t.Fatalf("got %d fallback records, want 1:\n%s", len(got), buf)
	}
	for _, want := range []string{"level=DEBUG", "piece=0", "points=4", fit.ErrFitFailed.Error()} {
		if !strings.Contains(got[0], want) {
			t.Errorf("fallback record %q lacks %q", got[0], want)
		}
	}
	if len(records(buf, "fit: stroke fitted")) != 1 {
		t.Errorf("summary record missing:\n%s", buf)
	}
}

func TestLogger_MissingShape(t *testing.T) {
	buf := captureLogs(t)

	reg := calligraphy.NewRegistry(nil)
	seg := ink.NewCubicBez(ink.Pt(0, 0), ink.Pt(33, 0), ink.Pt(66, 0), ink.Pt(100, 0))
	calligraphy.NewEngine(reg).Draw([]ink.CubicBez{seg}, 10)

	got := records(buf, "calligraphy: shape not in registry")
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2 (start and end shape):\n%s", len(got), buf)
	}
	for i, id := range []calligraphy.ShapeID{calligraphy.C2, calligraphy.C3} {
		if !strings.Contains(got[i], "level=WARN") || !strings.Contains(got[i], "shape="+id.String()) {
			t.Errorf("record %d = %q, want a warning naming %v", i, got[i], id)
		}
	}
}
