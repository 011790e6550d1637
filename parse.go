package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Column layout of the jstat tables, by 0-indexed field position. Kept as
// data so a future jstat schema change is a table update, not a rewrite.
type gcColumns struct {
	edenUsed int
	oldUsed  int
	permUsed int
}

type capacityColumns struct {
	youngMax int
	oldMax   int
	permMax  int
}

// jstat -gc:         S0C S1C S0U S1U EC EU OC OU PC/MC PU/MU ...
// jstat -gccapacity: NGCMN NGCMX NGC S0C S1C EC OGCMN OGCMX OGC OC PGCMN/MCMN PGCMX/MCMX ...
var (
	defaultGCColumns       = gcColumns{edenUsed: 5, oldUsed: 7, permUsed: 9}
	defaultCapacityColumns = capacityColumns{youngMax: 1, oldMax: 7, permMax: 11}
)

// parseSample extracts a MetricSample from raw jstat -gc and -gccapacity
// output. The tables report kilobytes; values are converted to bytes here.
func parseSample(gcText, capacityText string) (MetricSample, error) {
	gcFields, err := lastLineFields(gcText)
	if err != nil {
		return MetricSample{}, fmt.Errorf("%w: gc table: %v", ErrParse, err)
	}
	capFields, err := lastLineFields(capacityText)
	if err != nil {
		return MetricSample{}, fmt.Errorf("%w: capacity table: %v", ErrParse, err)
	}

	var sample MetricSample
	for _, col := range []struct {
		name   string
		fields []string
		index  int
		dst    *uint64
	}{
		{"eden used", gcFields, defaultGCColumns.edenUsed, &sample.EdenUsed},
		{"old used", gcFields, defaultGCColumns.oldUsed, &sample.OldUsed},
		{"perm used", gcFields, defaultGCColumns.permUsed, &sample.PermUsed},
		{"young max", capFields, defaultCapacityColumns.youngMax, &sample.YoungMax},
		{"old max", capFields, defaultCapacityColumns.oldMax, &sample.OldMax},
		{"perm max", capFields, defaultCapacityColumns.permMax, &sample.PermMax},
	} {
		kb, err := fieldKB(col.fields, col.index)
		if err != nil {
			return MetricSample{}, fmt.Errorf("%w: %s: %v", ErrParse, col.name, err)
		}
		*col.dst = kb * 1024
	}
	return sample, nil
}

// lastLineFields returns the whitespace-separated fields of the last
// non-empty line. Runs of spaces collapse: jstat pads its columns with
// variable whitespace.
func lastLineFields(text string) ([]string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New("empty output")
	}
	lines := strings.Split(trimmed, "\n")
	return strings.Fields(lines[len(lines)-1]), nil
}

// fieldKB reads the leading digits of the field at the given index. jstat
// writes decimals like "4096.0"; anything after the digits is discarded
// rather than rejected.
func fieldKB(fields []string, index int) (uint64, error) {
	if index >= len(fields) {
		return 0, fmt.Errorf("missing column %d (got %d fields)", index, len(fields))
	}
	field := fields[index]
	digits := 0
	for digits < len(field) && field[digits] >= '0' && field[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, fmt.Errorf("column %d %q has no numeric prefix", index, field)
	}
	kb, err := strconv.ParseUint(field[:digits], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %d %q: %v", index, field, err)
	}
	return kb, nil
}
