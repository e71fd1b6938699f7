// Package main provides the CLI entry point for framestrip.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framestrip/pkg/adapters/ggrenderer"
	"github.com/user/framestrip/pkg/adapters/imagewriter"
	"github.com/user/framestrip/pkg/adapters/logger"
	"github.com/user/framestrip/pkg/adapters/osfilesystem"
	"github.com/user/framestrip/pkg/adapters/termprogress"
	"github.com/user/framestrip/pkg/adapters/vidiosource"
	"github.com/user/framestrip/pkg/config"
	"github.com/user/framestrip/pkg/orchestrator"
	"github.com/user/framestrip/pkg/ports"
	"github.com/user/framestrip/pkg/stages/composite"
	"github.com/user/framestrip/pkg/stages/matte"
	"github.com/user/framestrip/pkg/summarizer"
)

var version = "dev"

func main() {
	// The -h shorthand belongs to --height, as it always has. Help stays
	// reachable through --help.
	cli.HelpFlag = &cli.BoolFlag{
		Name:  "help",
		Usage: "show this help message and exit",
	}

	app := &cli.App{
		Name:      "framestrip",
		Usage:     l10n.T("Condense a video into a single strip image of evenly spaced frames"),
		ArgsUsage: "<source> <destination>",
		Version:   version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "nframes",
				Aliases: []string{"n"},
				Usage:   l10n.T("the number of frames in the visualization"),
			},
			&cli.Float64Flag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   l10n.T("interval between frames, in seconds (used when --nframes is absent)"),
			},
			&cli.IntFlag{
				Name:    "height",
				Aliases: []string{"h"},
				Usage:   l10n.T("the height of each frame, in pixels (default: auto)"),
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   l10n.T("the output width of each frame, in pixels (default: auto)"),
			},
			&cli.StringFlag{
				Name:    "direction",
				Aliases: []string{"d"},
				Value:   "horizontal",
				Usage:   l10n.T("direction to concatenate frames, horizontal or vertical"),
			},
			&cli.BoolFlag{
				Name:    "trim",
				Aliases: []string{"t"},
				Usage:   l10n.T("detect and trim any hard matting (letterboxing or pillarboxing)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   l10n.T("mute console outputs"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML file with default option values"),
			},
			&cli.StringFlag{
				Name:    "summary",
				Aliases: []string{"s"},
				Usage:   l10n.T("write a Markdown summary of the run to this path"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: l10n.T("log level (debug, info, warn, error)"),
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 2 {
		cli.ShowAppHelp(c)
		return cli.Exit(l10n.T("a source video and a destination image path are required"), 2)
	}
	source := c.Args().Get(0)
	destination := c.Args().Get(1)

	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if cfg.NFrames == 0 && cfg.Interval == 0 {
		return cli.Exit(l10n.T("you must provide either an --(n)frames or --(i)nterval argument"), 2)
	}

	var log ports.Logger
	var progress ports.ProgressReporter
	if cfg.Quiet {
		log = logger.NewNoop()
		progress = termprogress.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
		progress = termprogress.New()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	opener := vidiosource.NewOpener()
	writer := imagewriter.New(fs, cfg.Quality)

	orch := orchestrator.New(
		opener,
		matte.NewStage(log),
		composite.NewStage(renderer, progress, log, cfg.Workers),
		writer,
		log,
	)

	orchConfig, err := cfg.ToOrchestratorConfig(source, destination)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if path := c.String("summary"); path != "" {
		if err := writeSummary(fs, path, source, destination, cfg, result); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		log.Info(l10n.F("Summary written to %s", path))
	}
	return nil
}

// writeSummary renders a Markdown report of the finished run.
func writeSummary(fs ports.FileSystem, path, source, destination string, cfg config.Config, result orchestrator.RunResult) error {
	var fileSize int64
	if info, err := os.Stat(destination); err == nil {
		fileSize = info.Size()
	}

	var durationSec float64
	if result.FPS > 0 {
		durationSec = result.TotalFrames / result.FPS
	}

	summary := summarizer.NewBuilder().
		WithSource(summarizer.SourceInfo{
			Path:        source,
			TotalFrames: int(result.TotalFrames),
			FPS:         result.FPS,
			DurationSec: durationSec,
			Width:       result.Native.Width,
			Height:      result.Native.Height,
		}).
		WithSampling(result.FrameCount, cfg.Direction).
		WithMatte(summarizer.MatteInfo{
			Enabled:       cfg.Trim,
			Kind:          result.Matte.String(),
			CroppedWidth:  result.Cropped.Width,
			CroppedHeight: result.Cropped.Height,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:        destination,
			Width:       result.Width,
			Height:      result.Height,
			FrameWidth:  result.FrameSize.Width,
			FrameHeight: result.FrameSize.Height,
			FileSize:    fileSize,
		}).
		Build()

	writer := summarizer.NewWriter(fs, summarizer.NewMarkdownFormatter(summarizer.WithVersion(version)))
	return writer.Write(path, summary)
}

// buildConfig layers CLI flags over the config file (when given) over the
// defaults.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("nframes") {
		cfg.NFrames = c.Int("nframes")
	}
	if c.IsSet("interval") {
		cfg.Interval = c.Float64("interval")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("direction") {
		cfg.Direction = c.String("direction")
	}
	if c.IsSet("trim") {
		cfg.Trim = c.Bool("trim")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg, nil
}
