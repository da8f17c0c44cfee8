package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"oggify/internal/audioprobe"
	"oggify/internal/fileutil"
	"oggify/internal/filterchain"
	"oggify/internal/logging"
	"oggify/internal/services"
)

// ConvertFile converts a single input to a sibling .ogg, replacing any
// existing output. The returned error covers unusable inputs; a conversion
// failure is reported through Result.
func (s *Scheduler) ConvertFile(ctx context.Context, input string) (Result, error) {
	info, err := os.Stat(input)
	if err != nil {
		return Result{}, services.Wrap(services.ErrInvalidPath, "batch", "convert file", "stat input", err)
	}
	if !info.Mode().IsRegular() {
		return Result{}, services.Wrap(services.ErrInvalidPath, "batch", "convert file", fmt.Sprintf("%s is not a regular file", input), nil)
	}
	output := fileutil.ReplaceExt(input, OutputExt)
	if filepath.Clean(output) == filepath.Clean(input) {
		return Result{}, services.Wrap(services.ErrValidation, "batch", "convert file", fmt.Sprintf("%s is already an %s file", input, OutputExt), nil)
	}

	task := Task{
		Input:   input,
		Output:  output,
		Speed:   s.speed,
		Filters: s.filters.Clone(),
	}
	s.notify(task, StatusPending)
	return s.execute(ctx, task), nil
}

// execute runs one task to a terminal state. It never panics; a panic in the
// converter is converted into a failed result.
func (s *Scheduler) execute(ctx context.Context, task Task) (result Result) {
	started := time.Now()
	ctx = services.WithTask(ctx, filepath.Base(task.Input))
	logger := logging.WithContext(ctx, s.logger)

	result = Result{
		Task:       task,
		Status:     StatusRunning,
		Expression: filterchain.Build(task.Filters, task.Speed),
	}
	s.notify(task, StatusRunning)

	defer func() {
		if r := recover(); r != nil {
			result.Err = services.Wrap(services.ErrTransient, "batch", "convert", fmt.Sprintf("converter panic: %v", r), nil)
		}
		result.Elapsed = time.Since(started)
		if result.Err != nil {
			result.Status = StatusFailed
			logger.Error("conversion failed",
				logging.String("input", task.Input),
				logging.String(logging.FieldFailureKind, services.FailureKind(result.Err)),
				logging.Duration("elapsed", result.Elapsed),
				logging.Error(result.Err),
			)
		} else {
			result.Status = StatusSucceeded
			logger.Info("converted",
				logging.String("input", task.Input),
				logging.String("output", task.Output),
				logging.Duration("elapsed", result.Elapsed),
			)
		}
		s.notify(task, result.Status)
	}()

	if probe, err := audioprobe.Inspect(task.Input); err == nil {
		result.InputDuration = probe.Duration
		logger.Debug("input inspected",
			logging.String("format", probe.Format),
			logging.Int("sample_rate", probe.SampleRate),
			logging.Int("channels", probe.Channels),
			logging.Duration("duration", probe.Duration),
		)
	} else {
		logger.Debug("input inspection unavailable", logging.Error(err))
	}

	logger.Debug("conversion starting",
		logging.String("output", task.Output),
		logging.String("expression", result.Expression),
	)
	result.Err = s.convert(ctx, task, result.Expression)
	return result
}

// convert writes to a hidden temp file beside the output and moves it into
// place once the converter (and optional verification) succeeds. The temp
// file is removed on every other exit, including a converter panic.
func (s *Scheduler) convert(ctx context.Context, task Task, expression string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	partial, err := fileutil.CreateTempSibling(task.Output)
	if err != nil {
		return services.Wrap(services.ErrTransient, "batch", "prepare", "reserve temp output", err)
	}
	finalized := false
	defer func() {
		if !finalized {
			_ = os.Remove(partial)
		}
	}()

	if err := s.converter.Convert(ctx, task.Input, partial, expression); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
			return services.Wrap(services.ErrTransient, "batch", "convert", fmt.Sprintf("timed out after %s", s.timeout), err)
		}
		return err
	}

	if s.verifyOutput && expression != "" {
		if err := audioprobe.VerifyOgg(partial); err != nil {
			return services.Wrap(services.ErrValidation, "batch", "verify", "output is not a decodable Ogg Vorbis stream", err)
		}
	}

	if err := fileutil.Finalize(partial, task.Output); err != nil {
		return services.Wrap(services.ErrTransient, "batch", "finalize", "move output into place", err)
	}
	finalized = true
	return nil
}
