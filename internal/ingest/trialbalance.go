// Package ingest reads consolidated trial balance and reference mapping
// CSVs into the in-memory tables the core operates on. All schema
// negotiation happens here, once, so the mapper, rule engine, and impact
// analyzer never touch raw headers.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
	"github.com/sblr80595/financialreporting-sub000/internal/schema"
)

// Canonical trial balance headers. Period columns are free text and are
// recognized by what they are not.
const (
	ColGLCode      = "GL Code"
	ColDescription = "Description"
	ColDebit       = "Debit"
	ColCredit      = "Credit"
	ColBalance     = "Balance"
)

// TrialBalance is the ingested table plus the header list needed for
// period-column detection downstream.
type TrialBalance struct {
	Rows    []model.TrialBalanceRow
	Headers []string
}

// ReadTrialBalance reads a trial balance CSV. GL Code and Description are
// required; Debit, Credit, and Balance are optional. When Debit/Credit are
// absent they are derived from the signed Balance (positive is debit,
// negative is credit); when Balance is absent it is derived as
// Debit - Credit. Every other column whose cells parse as numbers is
// captured into the row's period-value map under its header label.
func ReadTrialBalance(r io.Reader) (*TrialBalance, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading trial balance CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("trial balance CSV is empty")
	}

	cols, err := schema.ResolveColumns(records[0], ColGLCode, ColDescription)
	if err != nil {
		return nil, fmt.Errorf("trial balance: %w", err)
	}

	codeIdx, _ := cols.Lookup(ColGLCode)
	descIdx, _ := cols.Lookup(ColDescription)
	debitIdx, hasDebit := cols.Lookup(ColDebit)
	creditIdx, hasCredit := cols.Lookup(ColCredit)
	balanceIdx, hasBalance := cols.Lookup(ColBalance)

	if !hasBalance && (!hasDebit || !hasCredit) {
		return nil, fmt.Errorf("trial balance: need either a %q column or both %q and %q, have %v",
			ColBalance, ColDebit, ColCredit, cols.Headers())
	}

	structural := map[int]bool{codeIdx: true, descIdx: true}
	if hasDebit {
		structural[debitIdx] = true
	}
	if hasCredit {
		structural[creditIdx] = true
	}
	if hasBalance {
		structural[balanceIdx] = true
	}

	tb := &TrialBalance{Headers: cols.Headers()}
	for n, rec := range records[1:] {
		row, err := unmarshalRow(rec, cols.Headers(), structural, codeIdx, descIdx,
			debitIdx, hasDebit, creditIdx, hasCredit, balanceIdx, hasBalance)
		if err != nil {
			return nil, fmt.Errorf("trial balance row %d: %w", n+2, err)
		}
		tb.Rows = append(tb.Rows, row)
	}
	return tb, nil
}

func unmarshalRow(rec, headers []string, structural map[int]bool,
	codeIdx, descIdx int,
	debitIdx int, hasDebit bool,
	creditIdx int, hasCredit bool,
	balanceIdx int, hasBalance bool,
) (model.TrialBalanceRow, error) {
	row := model.TrialBalanceRow{
		GLCode:       field(rec, codeIdx),
		Description:  field(rec, descIdx),
		PeriodValues: make(map[string]decimal.Decimal),
	}

	// A blank cell under a monetary column reads as zero but is recorded
	// on the row so the missing-data rule can report it. Columns the
	// extract omits entirely are derived below and are not null.
	parseCell := func(i int, name string) (decimal.Decimal, error) {
		cell := field(rec, i)
		if cell == "" {
			row.NullFields = append(row.NullFields, name)
			return decimal.Zero, nil
		}
		return ParseAmount(cell)
	}

	var err error
	if hasDebit {
		if row.Debit, err = parseCell(debitIdx, ColDebit); err != nil {
			return row, fmt.Errorf("parsing debit %q: %w", field(rec, debitIdx), err)
		}
	}
	if hasCredit {
		if row.Credit, err = parseCell(creditIdx, ColCredit); err != nil {
			return row, fmt.Errorf("parsing credit %q: %w", field(rec, creditIdx), err)
		}
	}
	if hasBalance {
		if row.Balance, err = parseCell(balanceIdx, ColBalance); err != nil {
			return row, fmt.Errorf("parsing balance %q: %w", field(rec, balanceIdx), err)
		}
	}

	// Derive whichever monetary view the extract left out.
	switch {
	case !hasDebit || !hasCredit:
		if row.Balance.Sign() >= 0 {
			row.Debit = row.Balance
		} else {
			row.Credit = row.Balance.Neg()
		}
	case !hasBalance:
		row.Balance = row.Debit.Sub(row.Credit)
	}

	for i, h := range headers {
		if structural[i] || i >= len(rec) {
			continue
		}
		cell := strings.TrimSpace(rec[i])
		if cell == "" {
			continue
		}
		// Non-numeric cells under a free-text column are not period
		// values; skip them rather than failing the row.
		if v, err := ParseAmount(cell); err == nil {
			row.PeriodValues[h] = v
		}
	}
	return row, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// ParseAmount parses a spreadsheet monetary cell: thousands separators are
// dropped and accountant-style parentheses mean negative. Empty cells are
// zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}
