package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jvmcheck/internal/cmdexec"
)

// gcStats holds the two raw jstat tables for one pid.
type gcStats struct {
	snapshot string
	capacity string
}

// collectGCStats invokes jstat twice for the pid, each call under its own
// timeout. Any failure (missing tool, non-zero exit, timeout, empty output)
// is a StatisticsUnavailable condition for this target only.
func collectGCStats(ctx context.Context, jstatPath string, pid int32, timeout time.Duration) (gcStats, error) {
	snapshot, err := runJstat(ctx, jstatPath, "-gc", pid, timeout)
	if err != nil {
		return gcStats{}, err
	}
	capacity, err := runJstat(ctx, jstatPath, "-gccapacity", pid, timeout)
	if err != nil {
		return gcStats{}, err
	}
	return gcStats{snapshot: snapshot, capacity: capacity}, nil
}

func runJstat(ctx context.Context, path, mode string, pid int32, timeout time.Duration) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := cmdexec.Output(callCtx, path, mode, strconv.Itoa(int(pid)))
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: jstat %s timed out for pid %d", ErrStatsUnavailable, mode, pid)
		}
		return "", fmt.Errorf("%w: jstat %s pid %d: %v", ErrStatsUnavailable, mode, pid, err)
	}
	if strings.TrimSpace(string(out)) == "" {
		return "", fmt.Errorf("%w: jstat %s pid %d returned no output", ErrStatsUnavailable, mode, pid)
	}
	return string(out), nil
}
