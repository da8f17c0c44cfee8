package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"oggify/internal/batch"
	"oggify/internal/config"
	"oggify/internal/filterchain"
	"oggify/internal/logging"
	"oggify/internal/services"
	"oggify/internal/services/ffmpeg"
)

type convertOptions struct {
	path    string
	workers int
	speed   float64
	filters string
}

// runSettings are the effective values after flags are layered on config.
type runSettings struct {
	workers int
	speed   float64
	filters filterchain.Spec
}

func runConvert(cmd *cobra.Command, ctx *commandContext, opts convertOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cmd, cfg, opts)
	if err != nil {
		return err
	}

	target := strings.TrimSpace(opts.path)
	if target == "" {
		return services.Wrap(services.ErrInvalidPath, "", "", "no path given; pass a file or directory", nil)
	}
	info, err := os.Stat(target)
	if err != nil || (!info.IsDir() && !info.Mode().IsRegular()) {
		return services.Wrap(services.ErrInvalidPath, "", "", target, nil)
	}

	logger, err := ctx.newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	runCtx := cmd.Context()
	converter := ffmpeg.NewCLI(
		ffmpeg.WithBinary(cfg.Conversion.FFmpegBinary),
		ffmpeg.WithCodec(cfg.Conversion.Codec),
	)
	scheduler, err := batch.New(batch.Options{
		Workers:       settings.workers,
		Speed:         settings.speed,
		Filters:       settings.filters,
		Timeout:       cfg.Timeout(),
		VerifyOutput:  cfg.Conversion.VerifyOutput,
		LockDirectory: cfg.Conversion.LockDirectory,
		Converter:     converter,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	logRunBanner(logger, target, info.IsDir(), settings, converter.Binary())

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if info.IsDir() {
		summary, err := scheduler.Run(runCtx, target)
		if batch.IsBusy(err) {
			logger.Warn("directory is locked by another run", logging.String("path", target))
		}
		if err != nil {
			return err
		}
		fmt.Fprint(out, renderSummary(summary, colorize))
		return nil
	}

	result, err := scheduler.ConvertFile(runCtx, target)
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderSingleResult(result, colorize))
	return nil
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config, opts convertOptions) (runSettings, error) {
	settings := runSettings{
		workers: cfg.Conversion.Workers,
		speed:   cfg.Conversion.Speed,
		filters: cfg.Filters.Clone(),
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		if opts.workers < 1 {
			return settings, services.Wrap(services.ErrValidation, "", "", fmt.Sprintf("--workers must be at least 1, got %d", opts.workers), nil)
		}
		settings.workers = opts.workers
	}
	if flags.Changed("speed") {
		if math.IsNaN(opts.speed) || math.IsInf(opts.speed, 0) || opts.speed <= 0 {
			return settings, services.Wrap(services.ErrValidation, "", "", fmt.Sprintf("--speed must be a positive number, got %v", opts.speed), nil)
		}
		settings.speed = opts.speed
	}
	if flags.Changed("filters") {
		override, err := filterchain.Parse(opts.filters)
		if err != nil {
			return settings, services.Wrap(services.ErrValidation, "", "", "--filters", err)
		}
		settings.filters = filterchain.Merge(settings.filters, override)
	}
	return settings, nil
}

func logRunBanner(logger *slog.Logger, target string, directory bool, settings runSettings, binary string) {
	mode := "file"
	if directory {
		mode = "directory"
	}
	expression := filterchain.Build(settings.filters, settings.speed)
	if expression == "" {
		expression = "(stream copy)"
	}
	logger.Info("oggify starting",
		logging.String("path", target),
		logging.String("mode", mode),
		logging.Int("workers", settings.workers),
		logging.String("speed", filterchain.FormatSpeed(settings.speed)),
		logging.String("expression", expression),
		logging.String("ffmpeg", binary),
	)
	if unknown := settings.filters.Unknown(); len(unknown) > 0 {
		logger.Warn("ignoring unknown filters", logging.String("filters", strings.Join(unknown, ",")))
	}
}
