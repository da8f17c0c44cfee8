package batch

import (
	"time"

	"oggify/internal/filterchain"
)

// ReadyDirName is the subdirectory that receives converted outputs.
const ReadyDirName = "ready"

// OutputExt is the extension of every converted file.
const OutputExt = ".ogg"

// Status is the lifecycle state of a conversion task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Phase tracks a directory run from enumeration to the completion barrier.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseEnumerating
	PhaseDispatching
	PhaseAwaitingCompletion
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseEnumerating:
		return "enumerating"
	case PhaseDispatching:
		return "dispatching"
	case PhaseAwaitingCompletion:
		return "awaiting_completion"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Task is one input/output pair with the settings used to convert it.
// Filters is a task-owned copy; nothing else holds a reference to it.
type Task struct {
	Input   string
	Output  string
	Speed   float64
	Filters filterchain.Spec
}

// Result records the outcome of one task.
type Result struct {
	Task       Task
	Status     Status
	Err        error
	Expression string
	Elapsed    time.Duration
	// InputDuration is the decoded length of the input, zero when the
	// input could not be inspected.
	InputDuration time.Duration
}

// Skip reasons reported in Summary.Skipped.
const (
	SkipOutputExists    = "output exists"
	SkipDuplicateOutput = "duplicate output"
)

// Skipped is an eligible input that was not dispatched.
type Skipped struct {
	Input  string
	Output string
	Reason string
}

// Summary aggregates one directory run.
type Summary struct {
	RunID      string
	Directory  string
	ReadyDir   string
	Workers    int
	Discovered int
	Skipped    []Skipped
	Results    []Result
	Elapsed    time.Duration
}

// Dispatched counts tasks handed to the worker pool or failed before start.
func (s Summary) Dispatched() int {
	return len(s.Results)
}

// Succeeded counts tasks that produced an output.
func (s Summary) Succeeded() int {
	return s.count(StatusSucceeded)
}

// Failed counts tasks that did not produce an output.
func (s Summary) Failed() int {
	return s.count(StatusFailed)
}

func (s Summary) count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}
