package main

import "strings"

// aggregate folds per-target results, in target order, into the whole-run
// outcome. The worst severity wins; on a rank tie the first-seen severity
// is kept. An empty input means no target produced a result, which is
// itself UNKNOWN.
func aggregate(results []EvaluationResult) AggregateResult {
	agg := AggregateResult{Overall: SeverityUnknown}
	if len(results) == 0 {
		return agg
	}

	agg.Overall = SeverityOK
	var perf []string
	for _, res := range results {
		if res.Severity.rank() > agg.Overall.rank() {
			agg.Overall = res.Severity
		}
		switch res.Severity {
		case SeverityOK:
			agg.OKMessages = append(agg.OKMessages, res.Messages...)
		case SeverityWarning:
			agg.WarningMessages = append(agg.WarningMessages, res.Messages...)
		default:
			agg.CriticalMessages = append(agg.CriticalMessages, res.Messages...)
		}
		if res.PerfFragment != "" {
			perf = append(perf, res.PerfFragment)
		}
	}
	agg.Perfdata = strings.Join(perf, " ")
	return agg
}

// Render produces the single report line: non-empty severity buckets from
// most to least severe, messages comma-joined inside a bucket, then the
// perfdata suffix.
func (a AggregateResult) Render() string {
	var sections []string
	if len(a.CriticalMessages) > 0 {
		sections = append(sections, "CRITICAL:"+strings.Join(a.CriticalMessages, ","))
	}
	if len(a.WarningMessages) > 0 {
		sections = append(sections, "WARNING:"+strings.Join(a.WarningMessages, ","))
	}
	if len(a.OKMessages) > 0 {
		sections = append(sections, "OK:"+strings.Join(a.OKMessages, ","))
	}
	if len(sections) == 0 {
		sections = append(sections, "UNKNOWN:no target produced a result")
	}
	return strings.Join(sections, " ") + "|" + a.Perfdata
}
