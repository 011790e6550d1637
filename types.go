package main

import "errors"

// Severity is a Nagios check state ordered by alarm priority.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityCritical
	SeverityUnknown
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the severity to the Nagios plugin exit code.
func (s Severity) ExitCode() int {
	switch s {
	case SeverityOK:
		return 0
	case SeverityWarning:
		return 1
	case SeverityCritical:
		return 2
	default:
		return 3
	}
}

// rank orders severities for aggregation. UNKNOWN counts as at least as
// severe as CRITICAL.
func (s Severity) rank() int {
	switch s {
	case SeverityOK:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Target identifies one monitored process.
type Target struct {
	PID   int32
	Label string
}

// MetricSample holds one target's GC readings, in bytes.
type MetricSample struct {
	EdenUsed uint64
	OldUsed  uint64
	PermUsed uint64
	YoungMax uint64
	OldMax   uint64
	PermMax  uint64
}

func (s MetricSample) HeapUsed() uint64 { return s.EdenUsed + s.OldUsed }
func (s MetricSample) HeapMax() uint64  { return s.YoungMax + s.OldMax }

// EvaluationResult is the per-target outcome of a threshold evaluation.
type EvaluationResult struct {
	Target       Target
	HeapUsed     uint64
	HeapMax      uint64
	HeapRatio    int
	PermUsed     uint64
	PermMax      uint64
	PermRatio    int
	Severity     Severity
	Messages     []string
	PerfFragment string
}

// AggregateResult is the whole-run outcome, folded from per-target results
// in target order.
type AggregateResult struct {
	Overall          Severity
	CriticalMessages []string
	WarningMessages  []string
	OKMessages       []string
	Perfdata         string
}

// Per-target failure conditions. Each is recovered locally: a failing
// target contributes a CRITICAL message and never aborts the run.
var (
	ErrProcessNotFound  = errors.New("process not found")
	ErrNotJavaProcess   = errors.New("not a java process")
	ErrStatsUnavailable = errors.New("gc statistics unavailable")
	ErrParse            = errors.New("unparseable gc statistics")
	ErrDivideByZero     = errors.New("zero capacity reading")
)
