package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"jvmcheck/internal/format"

	"github.com/shirou/gopsutil/v3/process"
)

const maxLabelLen = 32

// resolveTargets builds the target list from exactly one selection mode:
// an explicit pid list, a pid file, or a process-name search. Selection
// errors here are fatal for the whole run (exit UNKNOWN), unlike per-target
// failures later in the pipeline.
func resolveTargets(pids, pidFile, procName, label string) ([]Target, error) {
	modes := 0
	for _, set := range []bool{pids != "", pidFile != "", procName != ""} {
		if set {
			modes++
		}
	}
	if modes == 0 {
		return nil, errors.New("no target selection given: use one of -p, -F, -s")
	}
	if modes > 1 {
		return nil, errors.New("conflicting target selections: use only one of -p, -F, -s")
	}

	var (
		targets []Target
		err     error
	)
	switch {
	case pids != "":
		targets, err = targetsFromPIDList(pids)
	case pidFile != "":
		targets, err = targetsFromPIDFile(pidFile)
	default:
		targets, err = targetsFromProcessName(procName)
	}
	if err != nil {
		return nil, err
	}
	return applyLabelOverride(targets, label), nil
}

func targetsFromPIDList(list string) ([]Target, error) {
	var targets []Target
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		pid, err := strconv.ParseInt(tok, 10, 32)
		if err != nil || pid <= 0 {
			return nil, fmt.Errorf("invalid pid %q", tok)
		}
		targets = append(targets, Target{PID: int32(pid), Label: tok})
	}
	if len(targets) == 0 {
		return nil, errors.New("empty pid list")
	}
	return targets, nil
}

func targetsFromPIDFile(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pid file: %w", err)
	}
	tok := strings.TrimSpace(string(data))
	// Some pid files carry trailing metadata after the pid itself.
	if i := strings.IndexAny(tok, " \t\n"); i >= 0 {
		tok = tok[:i]
	}
	pid, err := strconv.ParseInt(tok, 10, 32)
	if err != nil || pid <= 0 {
		return nil, fmt.Errorf("pid file %s: invalid pid %q", path, tok)
	}
	return []Target{{PID: int32(pid), Label: tok}}, nil
}

// targetsFromProcessName scans the process table for name/command-line
// matches. Matches are sorted by pid so repeated runs report in the same
// order, and the scanning process itself is skipped: its own command line
// contains the search term.
func targetsFromProcessName(name string) ([]Target, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	needle := strings.ToLower(name)
	self := int32(os.Getpid())
	var targets []Target
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		pname, err := p.Name()
		if err != nil {
			continue
		}
		cmdline, _ := p.Cmdline()
		if !strings.Contains(strings.ToLower(pname+" "+cmdline), needle) {
			continue
		}
		targets = append(targets, Target{PID: p.Pid, Label: format.Truncate(name, maxLabelLen)})
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no process matches %q", name)
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].PID < targets[j].PID })
	if len(targets) > 1 {
		for i := range targets {
			targets[i].Label = fmt.Sprintf("%s_%d", targets[i].Label, targets[i].PID)
		}
	}
	return targets, nil
}

// applyLabelOverride renames targets when -l is given: the label itself for
// a single target, label_pid when several matched.
func applyLabelOverride(targets []Target, label string) []Target {
	if label == "" {
		return targets
	}
	if len(targets) == 1 {
		targets[0].Label = label
		return targets
	}
	for i := range targets {
		targets[i].Label = fmt.Sprintf("%s_%d", label, targets[i].PID)
	}
	return targets
}
