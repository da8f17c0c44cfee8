package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"oggify/internal/fileutil"
	"oggify/internal/filterchain"
	"oggify/internal/logging"
	"oggify/internal/services"
)

// lockFileName lives in the ready directory while a run holds it.
const lockFileName = ".oggify.lock"

// Converter performs a single conversion from inputPath to outputPath,
// applying expression when it is non-empty.
type Converter interface {
	Convert(ctx context.Context, inputPath, outputPath, expression string) error
}

// Options configures a Scheduler.
type Options struct {
	Workers       int
	Speed         float64
	Filters       filterchain.Spec
	Timeout       time.Duration
	VerifyOutput  bool
	LockDirectory bool
	Converter     Converter
	Logger        *slog.Logger

	// OnPhase observes directory phase transitions. It is called from the
	// goroutine running Run.
	OnPhase func(Phase)
	// OnTaskState observes task status changes. It is called from worker
	// goroutines and must be safe for concurrent use.
	OnTaskState func(Task, Status)
}

// Scheduler runs conversion batches.
type Scheduler struct {
	workers       int
	speed         float64
	filters       filterchain.Spec
	timeout       time.Duration
	verifyOutput  bool
	lockDirectory bool
	converter     Converter
	logger        *slog.Logger
	onPhase       func(Phase)
	onTaskState   func(Task, Status)
}

// New validates opts and constructs a Scheduler.
func New(opts Options) (*Scheduler, error) {
	if opts.Converter == nil {
		return nil, services.Wrap(services.ErrConfiguration, "batch", "init", "converter required", nil)
	}
	if opts.Workers < 1 {
		return nil, services.Wrap(services.ErrConfiguration, "batch", "init", fmt.Sprintf("workers must be at least 1, got %d", opts.Workers), nil)
	}
	if !(opts.Speed > 0) {
		return nil, services.Wrap(services.ErrConfiguration, "batch", "init", fmt.Sprintf("speed must be positive, got %v", opts.Speed), nil)
	}
	return &Scheduler{
		workers:       opts.Workers,
		speed:         opts.Speed,
		filters:       opts.Filters.Clone(),
		timeout:       opts.Timeout,
		verifyOutput:  opts.VerifyOutput,
		lockDirectory: opts.LockDirectory,
		converter:     opts.Converter,
		logger:        logging.NewComponentLogger(opts.Logger, "batch"),
		onPhase:       opts.OnPhase,
		onTaskState:   opts.OnTaskState,
	}, nil
}

// Run converts every eligible input in dir and waits for all of them. The
// returned error covers directory-level problems only; per-file failures are
// reported in the Summary.
func (s *Scheduler) Run(ctx context.Context, dir string) (Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, s.logger)

	summary := Summary{
		RunID:     runID,
		Directory: dir,
		ReadyDir:  filepath.Join(dir, ReadyDirName),
		Workers:   s.workers,
	}

	s.setPhase(PhaseEnumerating)
	inputs, err := Discover(dir)
	if err != nil {
		return summary, services.Wrap(services.ErrInvalidPath, "batch", "enumerate", "list inputs", err)
	}
	summary.Discovered = len(inputs)

	if err := os.MkdirAll(summary.ReadyDir, 0o755); err != nil {
		return summary, services.Wrap(services.ErrTransient, "batch", "prepare", "create ready directory", err)
	}

	if s.lockDirectory {
		unlock, err := lockReadyDir(summary.ReadyDir)
		if err != nil {
			return summary, err
		}
		defer unlock()
	}

	tasks, skipped := s.plan(dir, inputs)
	summary.Skipped = skipped
	for _, skip := range skipped {
		if skip.Reason == SkipDuplicateOutput {
			logger.Warn("input shares an output name with an earlier input; skipping",
				logging.String("input", skip.Input),
				logging.String("output", skip.Output),
			)
			continue
		}
		logger.Debug("output exists; skipping", logging.String("input", skip.Input))
	}

	logger.Info("conversion batch starting",
		logging.String("directory", dir),
		logging.Int("found", len(inputs)),
		logging.Int("queued", len(tasks)),
		logging.Int("skipped", len(skipped)),
		logging.Int("workers", s.workers),
	)

	summary.Results = s.dispatch(ctx, tasks)
	summary.Elapsed = time.Since(started)
	s.setPhase(PhaseDone)

	logger.Info("conversion batch finished",
		logging.Int("succeeded", summary.Succeeded()),
		logging.Int("failed", summary.Failed()),
		logging.Int("skipped", len(summary.Skipped)),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

// plan turns discovered inputs into tasks, dropping inputs whose output
// exists and inputs whose stem collides with an earlier one.
func (s *Scheduler) plan(dir string, inputs []string) ([]Task, []Skipped) {
	var (
		tasks   []Task
		skipped []Skipped
		claimed = make(map[string]struct{}, len(inputs))
	)
	for _, input := range inputs {
		output := OutputPath(dir, input)
		if _, dup := claimed[output]; dup {
			skipped = append(skipped, Skipped{Input: input, Output: output, Reason: SkipDuplicateOutput})
			continue
		}
		claimed[output] = struct{}{}
		// Stat errors other than absence fall through to the converter.
		if exists, _ := fileutil.Exists(output); exists {
			skipped = append(skipped, Skipped{Input: input, Output: output, Reason: SkipOutputExists})
			continue
		}
		tasks = append(tasks, Task{
			Input:   input,
			Output:  output,
			Speed:   s.speed,
			Filters: s.filters.Clone(),
		})
	}
	return tasks, skipped
}

// dispatch feeds tasks to exactly s.workers goroutines and blocks until each
// has finished. Tasks never handed out because ctx ended are failed in place.
func (s *Scheduler) dispatch(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, len(tasks))
	for _, task := range tasks {
		s.notify(task, StatusPending)
	}

	s.setPhase(PhaseDispatching)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for worker := 1; worker <= s.workers; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			workerCtx := services.WithWorker(ctx, worker)
			for idx := range jobs {
				results[idx] = s.execute(workerCtx, tasks[idx])
			}
		}(worker)
	}

	sent := 0
send:
	for sent < len(tasks) {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break send
		case jobs <- sent:
			sent++
		}
	}
	close(jobs)

	s.setPhase(PhaseAwaitingCompletion)
	wg.Wait()

	for idx := range results {
		if results[idx].Status.Terminal() {
			continue
		}
		err := services.Wrap(services.ErrTransient, "batch", "dispatch", "run cancelled before task started", context.Cause(ctx))
		results[idx] = Result{Task: tasks[idx], Status: StatusFailed, Err: err}
		s.notify(tasks[idx], StatusFailed)
	}
	return results
}

func (s *Scheduler) setPhase(phase Phase) {
	if s.onPhase != nil {
		s.onPhase(phase)
	}
}

func (s *Scheduler) notify(task Task, status Status) {
	if s.onTaskState != nil {
		s.onTaskState(task, status)
	}
}

func lockReadyDir(readyDir string) (func(), error) {
	lock := flock.New(filepath.Join(readyDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "batch", "lock", "acquire directory lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrBusy, "batch", "lock", fmt.Sprintf("another run is converting into %s", readyDir), nil)
	}
	return func() {
		_ = lock.Unlock()
	}, nil
}

// IsBusy reports whether err came from lock contention.
func IsBusy(err error) bool {
	return errors.Is(err, services.ErrBusy)
}
