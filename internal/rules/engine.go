package rules

import (
	"sort"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
)

// Engine holds the fixed rule set. The set is statically enumerable; the
// configuration only filters and tunes it.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine with the full built-in rule set.
func NewEngine() *Engine {
	return &Engine{rules: []Rule{
		debitsEqualCredits{},
		balanceAccuracy{},
		noDuplicateAccounts{},
		noMissingData{},
		balanceSignByType{},
		accountingEquation{},
	}}
}

// Run evaluates every rule the configuration enables, in ascending rule
// number, and returns one Result per enabled rule. Rules absent from the
// configuration, or present but disabled, are not run and do not appear in
// the output. A failing rule never stops the others.
func (e *Engine) Run(rows []model.TrialBalanceRow, cfg RunConfig) []Result {
	byKey := make(map[string]RuleConfig, len(cfg.Rules))
	for _, rc := range cfg.Rules {
		byKey[rc.Key] = rc
	}

	ordered := make([]Rule, len(e.rules))
	copy(ordered, e.rules)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number() < ordered[j].Number() })

	var results []Result
	for _, rule := range ordered {
		rc, ok := byKey[rule.Key()]
		if !ok || !rc.Enabled {
			continue
		}

		p := Params{PctTolerance: cfg.PctTolerance, AbsTolerance: cfg.AbsTolerance}
		if rc.PctOverride != nil {
			p.PctTolerance = *rc.PctOverride
		}
		if rc.AbsOverride != nil {
			p.AbsTolerance = *rc.AbsOverride
		}

		res := rule.Evaluate(rows, p)
		res.Severity = rc.Severity
		results = append(results, res)
	}
	return results
}

// CriticalFailure reports whether any result is a failed critical rule.
func CriticalFailure(results []Result) bool {
	for _, r := range results {
		if !r.Passed && r.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
