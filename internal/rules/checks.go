package rules

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
	"github.com/sblr80595/financialreporting-sub000/internal/normalize"
)

// Rule keys, stable across configuration files and reports.
const (
	KeyDebitsEqualCredits  = "debits_equal_credits"
	KeyBalanceAccuracy     = "balance_accuracy"
	KeyNoDuplicateAccounts = "no_duplicate_accounts"
	KeyNoMissingData       = "no_missing_data"
	KeyBalanceSignByType   = "balance_sign_by_type"
	KeyAccountingEquation  = "accounting_equation"
)

// debitsEqualCredits (rule 1): total debits equal total credits within
// max(total_debits * pct, abs).
type debitsEqualCredits struct{}

func (debitsEqualCredits) Key() string { return KeyDebitsEqualCredits }
func (debitsEqualCredits) Number() int { return 1 }

func (r debitsEqualCredits) Evaluate(rows []model.TrialBalanceRow, p Params) Result {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	diff := totalDebit.Sub(totalCredit).Abs()
	tol := decimal.Max(totalDebit.Abs().Mul(p.PctTolerance), p.AbsTolerance)

	return Result{
		RuleKey:    r.Key(),
		RuleNumber: r.Number(),
		Passed:     diff.LessThanOrEqual(tol),
		Metrics: map[string]any{
			"total_debit":  totalDebit,
			"total_credit": totalCredit,
			"difference":   diff,
			"tolerance":    tol,
		},
	}
}

// balanceAccuracy (rule 2): every row's balance equals debit - credit
// within the absolute tolerance.
type balanceAccuracy struct{}

func (balanceAccuracy) Key() string { return KeyBalanceAccuracy }
func (balanceAccuracy) Number() int { return 2 }

func (r balanceAccuracy) Evaluate(rows []model.TrialBalanceRow, p Params) Result {
	var violations []Violation
	maxDiff := decimal.Zero
	for i, row := range rows {
		diff := row.Balance.Sub(row.Debit.Sub(row.Credit)).Abs()
		if diff.GreaterThan(maxDiff) {
			maxDiff = diff
		}
		if diff.GreaterThan(p.AbsTolerance) {
			violations = append(violations, Violation{
				RowIndex:    i,
				GLCode:      row.GLCode,
				Description: row.Description,
				Detail: fmt.Sprintf("balance %s differs from debit-credit %s by %s",
					row.Balance, row.Debit.Sub(row.Credit), diff),
			})
		}
	}

	return Result{
		RuleKey:    r.Key(),
		RuleNumber: r.Number(),
		Passed:     len(violations) == 0,
		Metrics: map[string]any{
			"rows_checked":   len(rows),
			"mismatches":     len(violations),
			"max_difference": maxDiff,
		},
		Violations: violations,
	}
}

// noDuplicateAccounts (rule 3): no GL code appears more than once. Exact
// check, no tolerance. Rows with empty codes are rule 4's concern.
type noDuplicateAccounts struct{}

func (noDuplicateAccounts) Key() string { return KeyNoDuplicateAccounts }
func (noDuplicateAccounts) Number() int { return 3 }

func (r noDuplicateAccounts) Evaluate(rows []model.TrialBalanceRow, _ Params) Result {
	byCode := make(map[string][]int)
	var codeOrder []string
	for i, row := range rows {
		code := normalize.Code(row.GLCode, true)
		if code == "" {
			continue
		}
		if _, seen := byCode[code]; !seen {
			codeOrder = append(codeOrder, code)
		}
		byCode[code] = append(byCode[code], i)
	}

	var violations []Violation
	duplicateCodes := 0
	duplicateRecords := 0
	for _, code := range codeOrder {
		idxs := byCode[code]
		if len(idxs) < 2 {
			continue
		}
		duplicateCodes++
		duplicateRecords += len(idxs)
		for _, i := range idxs {
			violations = append(violations, Violation{
				RowIndex:    i,
				GLCode:      rows[i].GLCode,
				Description: rows[i].Description,
				Detail:      fmt.Sprintf("GL code appears %d times", len(idxs)),
			})
		}
	}

	return Result{
		RuleKey:    r.Key(),
		RuleNumber: r.Number(),
		Passed:     len(violations) == 0,
		Metrics: map[string]any{
			"duplicate_gl_codes":      duplicateCodes,
			"total_duplicate_records": duplicateRecords,
		},
		Violations: violations,
	}
}

// noMissingData (rule 4): every row carries a GL code, a description, and
// real monetary values. Blank monetary cells read as zero at ingestion but
// are recorded on the row's NullFields, which is how they surface here.
type noMissingData struct{}

func (noMissingData) Key() string { return KeyNoMissingData }
func (noMissingData) Number() int { return 4 }

func (r noMissingData) Evaluate(rows []model.TrialBalanceRow, _ Params) Result {
	var violations []Violation
	missingCode := 0
	missingDesc := 0
	nullNumeric := 0
	for i, row := range rows {
		var missing []string
		if normalize.Code(row.GLCode, true) == "" {
			missing = append(missing, "GL code")
			missingCode++
		}
		if normalize.Description(row.Description) == "" {
			missing = append(missing, "description")
			missingDesc++
		}
		if len(row.NullFields) > 0 {
			for _, f := range row.NullFields {
				missing = append(missing, strings.ToLower(f))
			}
			nullNumeric++
		}
		if len(missing) > 0 {
			violations = append(violations, Violation{
				RowIndex:    i,
				GLCode:      row.GLCode,
				Description: row.Description,
				Detail:      "missing " + strings.Join(missing, ", "),
			})
		}
	}

	return Result{
		RuleKey:    r.Key(),
		RuleNumber: r.Number(),
		Passed:     len(violations) == 0,
		Metrics: map[string]any{
			"rows_checked":        len(rows),
			"missing_gl_code":     missingCode,
			"missing_description": missingDesc,
			"null_numeric_rows":   nullNumeric,
		},
		Violations: violations,
	}
}

// balanceSignByType (rule 5): the stored sign convention is assets and
// expenses positive, liabilities/equity/revenue negative. Rows whose
// balance magnitude is within the absolute tolerance are exempt; unknown
// account types are not checked here.
type balanceSignByType struct{}

func (balanceSignByType) Key() string { return KeyBalanceSignByType }
func (balanceSignByType) Number() int { return 5 }

func (r balanceSignByType) Evaluate(rows []model.TrialBalanceRow, p Params) Result {
	var violations []Violation
	checked := 0
	exempt := 0
	for i, row := range rows {
		if row.Balance.Abs().LessThanOrEqual(p.AbsTolerance) {
			exempt++
			continue
		}

		var bad bool
		var want string
		switch row.AccountType {
		case model.AccountTypeAsset, model.AccountTypeExpense:
			bad = row.Balance.Sign() < 0
			want = "non-negative"
		case model.AccountTypeLiability, model.AccountTypeEquity, model.AccountTypeRevenue:
			bad = row.Balance.Sign() > 0
			want = "non-positive"
		default:
			continue
		}
		checked++
		if bad {
			violations = append(violations, Violation{
				RowIndex:    i,
				GLCode:      row.GLCode,
				Description: row.Description,
				Detail: fmt.Sprintf("%s account has %s balance, expected %s",
					row.AccountType, row.Balance, want),
			})
		}
	}

	return Result{
		RuleKey:    r.Key(),
		RuleNumber: r.Number(),
		Passed:     len(violations) == 0,
		Metrics: map[string]any{
			"rows_checked":     checked,
			"near_zero_exempt": exempt,
			"sign_violations":  len(violations),
		},
		Violations: violations,
	}
}

// accountingEquation (rule 6): Assets == -(Liabilities + Equity + Revenue
// + Expenses) within max(assets * pct, abs), and total assets must be
// positive. A data set that fails both sides of this check almost always
// does not follow the stored sign convention and should be treated as an
// upstream extraction problem.
type accountingEquation struct{}

func (accountingEquation) Key() string { return KeyAccountingEquation }
func (accountingEquation) Number() int { return 6 }

func (r accountingEquation) Evaluate(rows []model.TrialBalanceRow, p Params) Result {
	totals := map[model.AccountType]decimal.Decimal{}
	for _, row := range rows {
		totals[row.AccountType] = totals[row.AccountType].Add(row.Balance)
	}

	assets := totals[model.AccountTypeAsset]
	liabilities := totals[model.AccountTypeLiability]
	equity := totals[model.AccountTypeEquity]
	revenue := totals[model.AccountTypeRevenue]
	expenses := totals[model.AccountTypeExpense]

	rhs := liabilities.Add(equity).Add(revenue).Add(expenses).Neg()
	diff := assets.Sub(rhs).Abs()
	tol := decimal.Max(assets.Abs().Mul(p.PctTolerance), p.AbsTolerance)
	assetsPositive := assets.Sign() > 0

	return Result{
		RuleKey:    r.Key(),
		RuleNumber: r.Number(),
		Passed:     diff.LessThanOrEqual(tol) && assetsPositive,
		Metrics: map[string]any{
			"assets":          assets,
			"liabilities":     liabilities,
			"equity":          equity,
			"revenue":         revenue,
			"expenses":        expenses,
			"difference":      diff,
			"tolerance":       tol,
			"assets_positive": assetsPositive,
		},
	}
}
