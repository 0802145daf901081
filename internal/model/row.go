package model

import "github.com/shopspring/decimal"

// MatchStage records which stage of the mapping cascade resolved a row.
type MatchStage int

const (
	MatchNone      MatchStage = 0 // no mapping entry matched
	MatchCodeExact MatchStage = 1 // separator-preserving code join
	MatchCodeLoose MatchStage = 2 // separator-stripped code join
	MatchDesc      MatchStage = 3 // normalized-description fallback
)

// TrialBalanceRow is one GL account line of a consolidated trial balance.
// Balance is expected to equal Debit - Credit within tolerance; that is
// verified by the rule engine, not assumed here.
type TrialBalanceRow struct {
	GLCode      string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal

	// Set by ClassifyAccount / the category mapper.
	AccountType   AccountType
	CategoryBSPL  string
	CategoryMajor string
	CategoryMinor string
	MatchedBy     MatchStage

	// Monetary columns keyed by their original header label, e.g.
	// "(Unaudited) Mar'25".
	PeriodValues map[string]decimal.Decimal

	// NullFields names monetary columns that were present in the source
	// table but blank for this row. The decimal fields above read as zero
	// for such cells, so ingestion records the blanks here and the
	// missing-data rule reports them.
	NullFields []string
}

// Mapped reports whether the mapping cascade attached a category triple.
func (r TrialBalanceRow) Mapped() bool {
	return r.MatchedBy != MatchNone
}

// PeriodValue returns the monetary value under a period column label, or
// zero when the row has no value for it.
func (r TrialBalanceRow) PeriodValue(label string) decimal.Decimal {
	if r.PeriodValues == nil {
		return decimal.Zero
	}
	return r.PeriodValues[label]
}
