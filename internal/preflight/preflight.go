package preflight

import (
	"context"
	"os"

	"oggify/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks relevant to converting target. An empty target
// limits the run to toolchain checks.
func RunAll(ctx context.Context, cfg *config.Config, target string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, status := range CheckSystemDeps(ctx, cfg) {
		detail := status.Detail
		if status.Available {
			detail = status.Command
		}
		results = append(results, Result{Name: status.Name, Passed: status.Available, Detail: detail})
	}

	if target != "" {
		results = append(results, checkTarget(target))
	}

	if cfg.Paths.LogDir != "" {
		if _, err := os.Stat(cfg.Paths.LogDir); err == nil {
			results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
		}
	}

	return results
}

func checkTarget(target string) Result {
	info, err := os.Stat(target)
	if err == nil && !info.IsDir() {
		return CheckFileReadable("Input file", target)
	}
	return CheckDirectoryAccess("Input directory", target)
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
