// Package impact computes before/after deltas between two period columns
// of a categorized trial balance and flags material changes.
package impact

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
)

// Options tunes materiality. The thresholds are taken as given, so a zero
// threshold genuinely means "flag every non-zero change"; callers that
// want the stock behaviour start from DefaultOptions. TopN <= 0 leaves
// the ranked list uncapped.
type Options struct {
	MaterialAbs decimal.Decimal // flat currency threshold on abs(delta)
	MaterialPct decimal.Decimal // fractional threshold on abs(delta/prior)
	TopN        int             // cap on the ranked material list
}

// DefaultOptions: material above 100,000 currency units or a 10% swing,
// top 20 ranked.
func DefaultOptions() Options {
	return Options{
		MaterialAbs: decimal.NewFromInt(100000),
		MaterialPct: decimal.NewFromFloat(0.10),
		TopN:        20,
	}
}

// Record is the period-over-period delta for one row. Recomputed on every
// call, never cached.
type Record struct {
	RowIndex    int
	GLCode      string
	Description string
	Category    string
	Prior       decimal.Decimal
	Current     decimal.Decimal
	Delta       decimal.Decimal
	Material    bool
}

// CategoryDelta aggregates deltas under one label.
type CategoryDelta struct {
	Label   string
	Prior   decimal.Decimal
	Current decimal.Decimal
	Delta   decimal.Decimal
}

// Report is the full delta analysis between two period columns.
type Report struct {
	PriorColumn   string
	CurrentColumn string

	// Changes lists every row with a non-zero delta, in table order.
	Changes []Record
	// Material is the ranked (descending abs delta) material subset,
	// capped at Options.TopN.
	Material []Record
	// ByCategory and ByType aggregate over the major category and the
	// five account types, ordered by first appearance. Unknown-type rows
	// are excluded from both.
	ByCategory []CategoryDelta
	ByType     []CategoryDelta
	// UnknownType lists rows that cannot be placed on either statement;
	// a data-quality exception list, not part of the aggregates above.
	// They still appear in Changes and can rank as Material.
	UnknownType []Record
}

// Analyze computes deltas between the prior and current period columns.
// It fails fast when neither column label is present on any row, naming
// the labels that are available, so a mis-detected schema is diagnosable.
func Analyze(rows []model.TrialBalanceRow, priorCol, currentCol string, opts Options) (Report, error) {
	if err := checkColumns(rows, priorCol, currentCol); err != nil {
		return Report{}, err
	}

	report := Report{PriorColumn: priorCol, CurrentColumn: currentCol}
	catAgg := newAggregator()
	typeAgg := newAggregator()
	var material []Record

	for i, row := range rows {
		prior := row.PeriodValue(priorCol)
		current := row.PeriodValue(currentCol)
		delta := current.Sub(prior)

		rec := Record{
			RowIndex:    i,
			GLCode:      row.GLCode,
			Description: row.Description,
			Category:    row.CategoryMajor,
			Prior:       prior,
			Current:     current,
			Delta:       delta,
			Material:    isMaterial(prior, delta, opts),
		}

		if row.AccountType == model.AccountTypeUnknown {
			report.UnknownType = append(report.UnknownType, rec)
		} else {
			catAgg.add(row.CategoryMajor, prior, current)
			typeAgg.add(string(row.AccountType), prior, current)
		}

		if !delta.IsZero() {
			report.Changes = append(report.Changes, rec)
		}
		if rec.Material {
			material = append(material, rec)
		}
	}

	sort.SliceStable(material, func(a, b int) bool {
		return material[a].Delta.Abs().GreaterThan(material[b].Delta.Abs())
	})
	if opts.TopN > 0 && len(material) > opts.TopN {
		material = material[:opts.TopN]
	}
	report.Material = material
	report.ByCategory = catAgg.deltas()
	report.ByType = typeAgg.deltas()

	return report, nil
}

// isMaterial: the percentage threshold is only evaluated when a prior
// value exists, so a zero denominator cannot divide.
func isMaterial(prior, delta decimal.Decimal, opts Options) bool {
	if delta.Abs().GreaterThan(opts.MaterialAbs) {
		return true
	}
	if prior.IsZero() {
		return false
	}
	return delta.Div(prior).Abs().GreaterThan(opts.MaterialPct)
}

func checkColumns(rows []model.TrialBalanceRow, priorCol, currentCol string) error {
	foundPrior := false
	foundCurrent := false
	labels := map[string]bool{}
	for _, row := range rows {
		for label := range row.PeriodValues {
			labels[label] = true
			if label == priorCol {
				foundPrior = true
			}
			if label == currentCol {
				foundCurrent = true
			}
		}
	}
	if len(rows) == 0 || (foundPrior && foundCurrent) {
		return nil
	}

	var available []string
	for label := range labels {
		available = append(available, label)
	}
	sort.Strings(available)
	missing := ""
	switch {
	case !foundPrior && !foundCurrent:
		missing = fmt.Sprintf("%q and %q", priorCol, currentCol)
	case !foundPrior:
		missing = fmt.Sprintf("%q", priorCol)
	default:
		missing = fmt.Sprintf("%q", currentCol)
	}
	return fmt.Errorf("period column %s not present on any row, have %v", missing, available)
}

// aggregator folds prior/current totals per label, preserving first-seen
// order so the report is deterministic.
type aggregator struct {
	order  []string
	totals map[string]*CategoryDelta
}

func newAggregator() *aggregator {
	return &aggregator{totals: make(map[string]*CategoryDelta)}
}

func (a *aggregator) add(label string, prior, current decimal.Decimal) {
	if label == "" {
		label = "(uncategorized)"
	}
	agg, ok := a.totals[label]
	if !ok {
		agg = &CategoryDelta{Label: label}
		a.totals[label] = agg
		a.order = append(a.order, label)
	}
	agg.Prior = agg.Prior.Add(prior)
	agg.Current = agg.Current.Add(current)
	agg.Delta = agg.Current.Sub(agg.Prior)
}

func (a *aggregator) deltas() []CategoryDelta {
	out := make([]CategoryDelta, 0, len(a.order))
	for _, label := range a.order {
		out = append(out, *a.totals[label])
	}
	return out
}
