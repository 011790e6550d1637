package main

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// javaLauncherName is the executable name a JVM process reports.
const javaLauncherName = "java"

// processValidator confirms a pid is alive and looks like a JVM.
type processValidator func(Target) error

var validate processValidator = validateTarget

// setProcessValidator swaps the active validator. Returns a restore func.
func setProcessValidator(v processValidator) (restore func()) {
	prev := validate
	validate = v
	return func() { validate = prev }
}

// validateTarget is best-effort: when the OS exposes no process name the
// target passes, and whether jstat can produce GC data is the ground truth.
func validateTarget(target Target) error {
	exists, err := process.PidExists(target.PID)
	if err != nil || !exists {
		return fmt.Errorf("%w: pid %d", ErrProcessNotFound, target.PID)
	}

	proc, err := process.NewProcess(target.PID)
	if err != nil {
		return fmt.Errorf("%w: pid %d", ErrProcessNotFound, target.PID)
	}
	name, err := proc.Name()
	if err != nil || name == "" {
		return nil
	}
	if !strings.Contains(strings.ToLower(name), javaLauncherName) {
		return fmt.Errorf("%w: pid %d is %q", ErrNotJavaProcess, target.PID, name)
	}
	return nil
}
