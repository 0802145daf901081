package model

import "github.com/sblr80595/financialreporting-sub000/internal/normalize"

// AccountType classifies a GL account for statement placement.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeUnknown   AccountType = "unknown"
)

// ClassifyAccount derives the account type from the first digit of a GL
// code, per the Schedule III chart-of-accounts convention: 1 asset,
// 2 liability, 3 revenue, 4 expense, 5 equity. Anything else, including an
// empty code, is unknown. Total: never fails.
func ClassifyAccount(glCode string) AccountType {
	code := normalize.Code(glCode, false)
	if code == "" {
		return AccountTypeUnknown
	}
	switch code[0] {
	case '1':
		return AccountTypeAsset
	case '2':
		return AccountTypeLiability
	case '3':
		return AccountTypeRevenue
	case '4':
		return AccountTypeExpense
	case '5':
		return AccountTypeEquity
	default:
		return AccountTypeUnknown
	}
}
