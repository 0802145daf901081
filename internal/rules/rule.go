// Package rules runs the accounting-integrity battery over a categorized
// trial balance. The engine is stateless: each call evaluates the rules
// enabled by the supplied configuration, in ascending rule number, and
// every enabled rule runs to completion regardless of what the others find.
package rules

import (
	"github.com/shopspring/decimal"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
)

// Severity grades how a failed rule should be treated by callers.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Params carries the tolerances in effect for a single rule evaluation.
// All comparisons are abs(a-b) <= tolerance; residual float rounding from
// upstream transformation stages must not surface as violations.
type Params struct {
	PctTolerance decimal.Decimal // fraction of the relevant total
	AbsTolerance decimal.Decimal // flat currency amount
}

// Violation identifies one offending row.
type Violation struct {
	RowIndex    int
	GLCode      string
	Description string
	Detail      string
}

// Result is the outcome of one rule over the full table. Metrics carry
// enough detail for a caller to render a report without re-deriving any
// numbers.
type Result struct {
	RuleKey    string
	RuleNumber int
	Severity   Severity
	Passed     bool
	Metrics    map[string]any
	Violations []Violation
}

// Rule is a single integrity check over a categorized trial balance.
type Rule interface {
	Key() string
	Number() int
	Evaluate(rows []model.TrialBalanceRow, p Params) Result
}

// RuleConfig enables and tunes one rule for a run. A nil override leaves
// the run-level tolerance in place.
type RuleConfig struct {
	Key         string
	Enabled     bool
	Severity    Severity
	PctOverride *decimal.Decimal
	AbsOverride *decimal.Decimal
}

// RunConfig is the immutable configuration for one engine run.
type RunConfig struct {
	PctTolerance decimal.Decimal
	AbsTolerance decimal.Decimal
	Rules        []RuleConfig
}

// DefaultRunConfig enables all six rules with their conventional
// severities: the balance checks and the accounting equation are critical,
// the data-quality checks are warnings.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		PctTolerance: decimal.NewFromFloat(0.001),
		AbsTolerance: decimal.NewFromFloat(1.0),
		Rules: []RuleConfig{
			{Key: KeyDebitsEqualCredits, Enabled: true, Severity: SeverityCritical},
			{Key: KeyBalanceAccuracy, Enabled: true, Severity: SeverityCritical},
			{Key: KeyNoDuplicateAccounts, Enabled: true, Severity: SeverityWarning},
			{Key: KeyNoMissingData, Enabled: true, Severity: SeverityWarning},
			{Key: KeyBalanceSignByType, Enabled: true, Severity: SeverityWarning},
			{Key: KeyAccountingEquation, Enabled: true, Severity: SeverityCritical},
		},
	}
}
