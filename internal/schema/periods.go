// Package schema resolves the shape of a trial balance table once, up
// front, so downstream stages work against named columns instead of
// re-deriving headers at each use site.
package schema

import (
	"fmt"
	"strings"
)

// PeriodColumns names the two monetary period columns of a trial balance.
// When Degenerate is true the table carried a single period column and it
// serves as both prior and current; callers must surface that as a warning.
type PeriodColumns struct {
	Prior      string
	Current    string
	Degenerate bool
}

// DetectPeriodColumns scans column names for the period markers used across
// extracts: a column containing "Unaudited" is the prior (pre-adjustment)
// balance, a column ending in "Adjusted" that does not contain "Unaudited"
// is the current (post-adjustment) balance. Month/year tokens in the
// headers are arbitrary and never matched. If only one of the two is
// present it is used for both and flagged degenerate; if neither is found
// an error names the columns that were scanned.
func DetectPeriodColumns(columns []string) (PeriodColumns, error) {
	var pc PeriodColumns
	for _, col := range columns {
		if pc.Prior == "" && strings.Contains(col, "Unaudited") {
			pc.Prior = col
		}
		if pc.Current == "" && strings.HasSuffix(strings.TrimSpace(col), "Adjusted") && !strings.Contains(col, "Unaudited") {
			pc.Current = col
		}
	}

	switch {
	case pc.Prior != "" && pc.Current != "":
		return pc, nil
	case pc.Prior != "":
		pc.Current = pc.Prior
		pc.Degenerate = true
		return pc, nil
	case pc.Current != "":
		pc.Prior = pc.Current
		pc.Degenerate = true
		return pc, nil
	default:
		return PeriodColumns{}, fmt.Errorf(
			"no period columns detected: expected a column containing %q and/or one ending in %q, have %s",
			"Unaudited", "Adjusted", quoteList(columns))
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
