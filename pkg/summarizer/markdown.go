package summarizer

import (
	"fmt"
	"strings"
)

// Translator translates display strings. The default is the identity.
type Translator func(string) string

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate Translator
	version   string
}

// Option configures a MarkdownFormatter.
type Option func(*MarkdownFormatter)

// WithTranslator sets the string translator.
func WithTranslator(t Translator) Option {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion includes a tool version line in the output.
func WithVersion(version string) Option {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Visualization Summary"))
	fmt.Fprintf(&b, "%s: %s\n", t("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		fmt.Fprintf(&b, "%s: %s\n", t("Version"), f.version)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Source"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Path"), summary.Source.Path)
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Dimensions"), summary.Source.Width, summary.Source.Height)
	fmt.Fprintf(&b, "- %s: %d\n", t("Total frames"), summary.Source.TotalFrames)
	fmt.Fprintf(&b, "- %s: %.2f fps\n", t("Frame rate"), summary.Source.FPS)
	if summary.Source.DurationSec > 0 {
		fmt.Fprintf(&b, "- %s: %s\n", t("Duration"), formatDuration(summary.Source.DurationSec))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Sampling"))
	fmt.Fprintf(&b, "- %s: %d\n", t("Frames sampled"), summary.Sampling.FrameCount)
	fmt.Fprintf(&b, "- %s: %s\n", t("Direction"), summary.Sampling.Direction)
	b.WriteString("\n")

	if summary.Matte.Enabled {
		fmt.Fprintf(&b, "## %s\n\n", t("Matte detection"))
		fmt.Fprintf(&b, "- %s: %s\n", t("Result"), summary.Matte.Kind)
		fmt.Fprintf(&b, "- %s: %dx%d\n", t("Content area"), summary.Matte.CroppedWidth, summary.Matte.CroppedHeight)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Path"), summary.Output.Path)
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Strip size"), summary.Output.Width, summary.Output.Height)
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Frame size"), summary.Output.FrameWidth, summary.Output.FrameHeight)
	if summary.Output.FileSize > 0 {
		fmt.Fprintf(&b, "- %s: %s\n", t("File size"), formatBytes(summary.Output.FileSize))
	}

	return b.String()
}

// formatDuration renders seconds as "1m 23.5s" or "23.5s".
func formatDuration(sec float64) string {
	if sec >= 60 {
		minutes := int(sec) / 60
		return fmt.Sprintf("%dm %.1fs", minutes, sec-float64(minutes*60))
	}
	return fmt.Sprintf("%.1fs", sec)
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

var _ Formatter = (*MarkdownFormatter)(nil)
