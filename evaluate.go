package main

import (
	"fmt"

	"jvmcheck/internal/format"
)

// evaluateSample applies the warning/critical thresholds to one sample.
// Tier checks run critical-first and, inside a tier, perm before heap; the
// first breach wins, so each target reports exactly one cause. A threshold
// of 0 disables that tier entirely.
func evaluateSample(target Target, sample MetricSample, warningPercent, criticalPercent int) (EvaluationResult, error) {
	heapUsed := sample.HeapUsed()
	heapMax := sample.HeapMax()
	if heapMax == 0 {
		return EvaluationResult{}, fmt.Errorf("%w: %s heap capacity is zero", ErrDivideByZero, target.Label)
	}
	if sample.PermMax == 0 {
		return EvaluationResult{}, fmt.Errorf("%w: %s perm/metaspace capacity is zero", ErrDivideByZero, target.Label)
	}

	res := EvaluationResult{
		Target:    target,
		HeapUsed:  heapUsed,
		HeapMax:   heapMax,
		HeapRatio: int(heapUsed * 100 / heapMax),
		PermUsed:  sample.PermUsed,
		PermMax:   sample.PermMax,
		PermRatio: int(sample.PermUsed * 100 / sample.PermMax),
	}

	switch {
	case criticalPercent > 0 && res.PermRatio >= criticalPercent:
		res.Severity = SeverityCritical
		res.Messages = append(res.Messages, fmt.Sprintf("%s perm/metaspace %d%% >= %d%%", target.Label, res.PermRatio, criticalPercent))
	case criticalPercent > 0 && res.HeapRatio >= criticalPercent:
		res.Severity = SeverityCritical
		res.Messages = append(res.Messages, fmt.Sprintf("%s heap %d%% >= %d%%", target.Label, res.HeapRatio, criticalPercent))
	case warningPercent > 0 && res.PermRatio >= warningPercent:
		res.Severity = SeverityWarning
		res.Messages = append(res.Messages, fmt.Sprintf("%s perm/metaspace %d%% >= %d%%", target.Label, res.PermRatio, warningPercent))
	case warningPercent > 0 && res.HeapRatio >= warningPercent:
		res.Severity = SeverityWarning
		res.Messages = append(res.Messages, fmt.Sprintf("%s heap %d%% >= %d%%", target.Label, res.HeapRatio, warningPercent))
	default:
		res.Severity = SeverityOK
		res.Messages = append(res.Messages, fmt.Sprintf("%s alive heap %d%% perm %d%%", target.Label, res.HeapRatio, res.PermRatio))
	}

	res.PerfFragment = perfFragment(res, warningPercent, criticalPercent)
	return res, nil
}

// perfFragment renders the four perfdata entries for one target as
// key=value;warn;crit;min;max, with thresholds scaled to bytes for the
// absolute entries.
func perfFragment(res EvaluationResult, warningPercent, criticalPercent int) string {
	key := format.SanitizeLabel(res.Target.Label)
	warn := uint64(warningPercent)
	crit := uint64(criticalPercent)
	return fmt.Sprintf(
		"%s_heap=%d;%d;%d;0;%d %s_heap_ratio=%d;%d;%d;0;100 %s_perm=%d;%d;%d;0;%d %s_perm_ratio=%d;%d;%d;0;100",
		key, res.HeapUsed, res.HeapMax*warn/100, res.HeapMax*crit/100, res.HeapMax,
		key, res.HeapRatio, warningPercent, criticalPercent,
		key, res.PermUsed, res.PermMax*warn/100, res.PermMax*crit/100, res.PermMax,
		key, res.PermRatio, warningPercent, criticalPercent)
}
