package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
)

func TestEngine_BalancedTableAllPass(t *testing.T) {
	results := NewEngine().Run(balancedTable(), DefaultRunConfig())
	require.Len(t, results, 6)
	for _, res := range results {
		assert.True(t, res.Passed, "rule %d (%s)", res.RuleNumber, res.RuleKey)
	}
}

func TestEngine_ResultsOrderedByRuleNumber(t *testing.T) {
	results := NewEngine().Run(balancedTable(), DefaultRunConfig())
	for i, res := range results {
		assert.Equal(t, i+1, res.RuleNumber)
	}
}

func TestEngine_DisabledRulesAbsentFromOutput(t *testing.T) {
	cfg := DefaultRunConfig()
	for i := range cfg.Rules {
		if cfg.Rules[i].Key == KeyNoDuplicateAccounts || cfg.Rules[i].Key == KeyAccountingEquation {
			cfg.Rules[i].Enabled = false
		}
	}

	results := NewEngine().Run(balancedTable(), cfg)
	require.Len(t, results, 4)
	for _, res := range results {
		assert.NotEqual(t, KeyNoDuplicateAccounts, res.RuleKey)
		assert.NotEqual(t, KeyAccountingEquation, res.RuleKey)
	}
}

func TestEngine_RuleIndependence(t *testing.T) {
	// Disabling a subset must not change the outcome of the remaining
	// rules. The fixture fails rules 1, 3 and 6.
	rows := []model.TrialBalanceRow{
		tbRow("100001", "1000", "0", "1000"),
		tbRow("100001", "200", "0", "200"),
		tbRow("500001", "0", "700", "-700"),
	}

	full := NewEngine().Run(rows, DefaultRunConfig())
	byKey := map[string]Result{}
	for _, res := range full {
		byKey[res.RuleKey] = res
	}

	cfg := DefaultRunConfig()
	for i := range cfg.Rules {
		if cfg.Rules[i].Key == KeyDebitsEqualCredits || cfg.Rules[i].Key == KeyNoDuplicateAccounts {
			cfg.Rules[i].Enabled = false
		}
	}
	subset := NewEngine().Run(rows, cfg)
	require.Len(t, subset, 4)
	for _, res := range subset {
		want := byKey[res.RuleKey]
		assert.Equal(t, want.Passed, res.Passed, res.RuleKey)
		assert.Equal(t, len(want.Violations), len(res.Violations), res.RuleKey)
	}
}

func TestEngine_FailingRuleDoesNotAbortRun(t *testing.T) {
	rows := []model.TrialBalanceRow{
		tbRow("100001", "1000", "0", "1000"),
		tbRow("500001", "0", "700", "-700"),
	}
	results := NewEngine().Run(rows, DefaultRunConfig())
	require.Len(t, results, 6, "every enabled rule reports even when others fail")
}

func TestEngine_AbsOverrideReplacesRunTolerance(t *testing.T) {
	rows := []model.TrialBalanceRow{
		tbRow("100001", "1000", "0", "1000"),
		tbRow("500001", "0", "990", "-990"),
	}

	cfg := DefaultRunConfig()
	results := NewEngine().Run(rows, cfg)
	require.False(t, results[0].Passed)

	loose := decimal.NewFromInt(50)
	for i := range cfg.Rules {
		if cfg.Rules[i].Key == KeyDebitsEqualCredits {
			cfg.Rules[i].AbsOverride = &loose
		}
	}
	results = NewEngine().Run(rows, cfg)
	assert.True(t, results[0].Passed, "override loosens only rule 1")
	// Rule 6 keeps the run-level tolerance and still fails.
	last := results[len(results)-1]
	require.Equal(t, KeyAccountingEquation, last.RuleKey)
	assert.False(t, last.Passed)
}

func TestEngine_SeverityComesFromConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	for i := range cfg.Rules {
		cfg.Rules[i].Severity = SeverityWarning
	}
	rows := []model.TrialBalanceRow{
		tbRow("100001", "1000", "0", "1000"),
		tbRow("500001", "0", "700", "-700"),
	}
	results := NewEngine().Run(rows, cfg)
	for _, res := range results {
		assert.Equal(t, SeverityWarning, res.Severity)
	}
	assert.False(t, CriticalFailure(results))
}

func TestCriticalFailure(t *testing.T) {
	rows := []model.TrialBalanceRow{
		tbRow("100001", "1000", "0", "1000"),
		tbRow("500001", "0", "700", "-700"),
	}
	results := NewEngine().Run(rows, DefaultRunConfig())
	assert.True(t, CriticalFailure(results))

	results = NewEngine().Run(balancedTable(), DefaultRunConfig())
	assert.False(t, CriticalFailure(results))
}
