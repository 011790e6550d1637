package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"jvmcheck/internal/format"

	"github.com/panjf2000/ants/v2"
)

// checkTarget runs the full pipeline for one target: validate, collect,
// parse, evaluate. Every per-target failure is recovered into a CRITICAL
// result so one bad process never hides the others.
func checkTarget(ctx context.Context, cfg *Config, target Target) EvaluationResult {
	start := time.Now()
	res, err := tryCheckTarget(ctx, cfg, target)
	if err != nil {
		slog.Debug("target check failed", "pid", target.PID, "err", err)
		return EvaluationResult{
			Target:   target,
			Severity: SeverityCritical,
			Messages: []string{fmt.Sprintf("%s %v", target.Label, err)},
		}
	}
	slog.Debug("target checked",
		"pid", target.PID,
		"severity", res.Severity.String(),
		"heap_used", format.FormatBytes(res.HeapUsed),
		"took", format.FormatDuration(time.Since(start)))
	return res
}

func tryCheckTarget(ctx context.Context, cfg *Config, target Target) (EvaluationResult, error) {
	if err := validate(target); err != nil {
		return EvaluationResult{}, err
	}

	timeout := time.Duration(cfg.Jstat.TimeoutSeconds) * time.Second
	stats, err := collectGCStats(ctx, cfg.Jstat.Path, target.PID, timeout)
	if err != nil {
		return EvaluationResult{}, err
	}

	sample, err := parseSample(stats.snapshot, stats.capacity)
	if err != nil {
		return EvaluationResult{}, err
	}
	return evaluateSample(target, sample, cfg.WarningPercent, cfg.CriticalPercent)
}

// runCheck evaluates all targets and folds them into the aggregate. Above
// concurrency 1 the targets run on a bounded pool; each result lands in its
// target's slot, so message and perfdata ordering is identical to the
// sequential pass.
func runCheck(ctx context.Context, cfg *Config, targets []Target) AggregateResult {
	results := make([]EvaluationResult, len(targets))

	if cfg.Concurrency > 1 && len(targets) > 1 {
		if pool, err := ants.NewPool(cfg.Concurrency); err == nil {
			defer pool.Release()
			var wg sync.WaitGroup
			for i, target := range targets {
				i, target := i, target
				wg.Add(1)
				if err := pool.Submit(func() {
					defer wg.Done()
					results[i] = checkTarget(ctx, cfg, target)
				}); err != nil {
					results[i] = checkTarget(ctx, cfg, target)
					wg.Done()
				}
			}
			wg.Wait()
			return aggregate(results)
		} else {
			slog.Warn("worker pool unavailable, checking sequentially", "err", err)
		}
	}

	for i, target := range targets {
		results[i] = checkTarget(ctx, cfg, target)
	}
	return aggregate(results)
}
