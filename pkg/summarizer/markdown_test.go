package summarizer

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/framestrip/pkg/adapters/osfilesystem"
)

func sampleSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		Source: SourceInfo{
			Path:        "clip.mp4",
			TotalFrames: 900,
			FPS:         30,
			DurationSec: 30,
			Width:       1920,
			Height:      1080,
		},
		Sampling: SamplingInfo{
			FrameCount: 16,
			Direction:  "horizontal",
		},
		Matte: MatteInfo{
			Enabled:       true,
			Kind:          "letterbox",
			CroppedWidth:  1920,
			CroppedHeight: 800,
		},
		Output: OutputInfo{
			Path:        "strip.png",
			Width:       160,
			Height:      800,
			FrameWidth:  10,
			FrameHeight: 800,
			FileSize:    1024 * 1024,
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	formatter := NewMarkdownFormatter()
	result := formatter.Format(sampleSummary())

	checks := []string{
		"# Visualization Summary",
		"clip.mp4",
		"1920x1080",
		"900",
		"30.00 fps",
		"30.0s",
		"16",
		"horizontal",
		"letterbox",
		"1920x800",
		"strip.png",
		"160x800",
		"1.00 MB",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_Format_NoMatte(t *testing.T) {
	formatter := NewMarkdownFormatter()
	summary := sampleSummary()
	summary.Matte = MatteInfo{}

	result := formatter.Format(summary)

	if strings.Contains(result, "Matte detection") {
		t.Error("matte section must be omitted when trimming was off")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translations := map[string]string{
		"Visualization Summary": "可視化サマリー",
		"Source":                "入力",
	}
	formatter := NewMarkdownFormatter(WithTranslator(func(s string) string {
		if t, ok := translations[s]; ok {
			return t
		}
		return s
	}))

	result := formatter.Format(sampleSummary())

	if !strings.Contains(result, "# 可視化サマリー") {
		t.Error("expected translated title")
	}
	if !strings.Contains(result, "## 入力") {
		t.Error("expected translated section heading")
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	formatter := NewMarkdownFormatter(WithVersion("v1.2.0"))
	result := formatter.Format(sampleSummary())

	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected version line")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{12.5, "12.5s"},
		{60, "1m 0.0s"},
		{90.25, "1m 30.2s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.sec); got != tt.want {
			t.Errorf("formatDuration(%v): expected %q, got %q", tt.sec, tt.want, got)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	fs := osfilesystem.New()
	writer := NewWriter(fs, NewMarkdownFormatter())
	path := filepath.Join(t.TempDir(), "summary.md")

	if err := writer.Write(path, sampleSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "# Visualization Summary") {
		t.Error("expected formatted content on disk")
	}
}
