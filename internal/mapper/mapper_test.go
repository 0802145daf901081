package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
)

func row(code, desc string) model.TrialBalanceRow {
	return model.TrialBalanceRow{GLCode: code, Description: desc}
}

func entry(code, desc, bspl, major, minor string) model.MappingEntry {
	return model.MappingEntry{
		GLCode:        code,
		Description:   desc,
		CategoryBSPL:  bspl,
		CategoryMajor: major,
		CategoryMinor: minor,
	}
}

func TestMap_CodeJoin(t *testing.T) {
	rows := []model.TrialBalanceRow{row("12015020", "Cash at bank")}
	entries := []model.MappingEntry{entry("12015020", "Cash", "BS", "Cash and cash equivalents", "Balances with banks")}

	out, unmapped, err := Map(rows, entries)
	require.NoError(t, err)
	assert.Zero(t, unmapped)
	assert.Equal(t, model.MatchCodeExact, out[0].MatchedBy)
	assert.Equal(t, "BS", out[0].CategoryBSPL)
	assert.Equal(t, "Cash and cash equivalents", out[0].CategoryMajor)
	assert.Equal(t, "Balances with banks", out[0].CategoryMinor)
	assert.Equal(t, model.AccountTypeAsset, out[0].AccountType)
}

func TestMap_LooseCodeJoinHandlesSeparator(t *testing.T) {
	// Ledger carries a "/" segment the mapping table lacks; the strict
	// join misses and the separator-stripped join resolves it.
	rows := []model.TrialBalanceRow{row("1201/5020", "Cash at bank")}
	entries := []model.MappingEntry{entry("12015020", "Cash", "BS", "Cash", "Bank")}

	out, unmapped, err := Map(rows, entries)
	require.NoError(t, err)
	assert.Zero(t, unmapped)
	assert.Equal(t, model.MatchCodeLoose, out[0].MatchedBy)
	assert.Equal(t, "Cash", out[0].CategoryMajor)
}

func TestMap_DescriptionFallback(t *testing.T) {
	// Code absent from the mapping table, but an empty-code entry shares
	// the normalized description.
	rows := []model.TrialBalanceRow{row("999999", "Sundry Debtors")}
	entries := []model.MappingEntry{
		entry("12015020", "Cash", "BS", "Cash", "Bank"),
		entry("", "sundry  debtors", "BS", "Trade receivables", "Others"),
	}

	out, unmapped, err := Map(rows, entries)
	require.NoError(t, err)
	assert.Zero(t, unmapped)
	assert.Equal(t, model.MatchDesc, out[0].MatchedBy)
	assert.Equal(t, "Trade receivables", out[0].CategoryMajor)
}

func TestMap_ExactCodeBeatsDescriptionFallback(t *testing.T) {
	// A row whose code matches one entry and whose description matches a
	// different entry must resolve by code.
	rows := []model.TrialBalanceRow{row("12015020", "Sundry Debtors")}
	entries := []model.MappingEntry{
		entry("12015020", "Cash", "BS", "Cash", "Bank"),
		entry("", "Sundry Debtors", "BS", "Trade receivables", "Others"),
	}

	out, _, err := Map(rows, entries)
	require.NoError(t, err)
	assert.Equal(t, model.MatchCodeExact, out[0].MatchedBy)
	assert.Equal(t, "Cash", out[0].CategoryMajor)
}

func TestMap_UnmappedRowsGetEmptyCategories(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row("12015020", "Cash at bank"),
		row("999999", "No such account"),
	}
	entries := []model.MappingEntry{entry("12015020", "Cash", "BS", "Cash", "Bank")}

	out, unmapped, err := Map(rows, entries)
	require.NoError(t, err)
	assert.Equal(t, 1, unmapped)
	assert.Equal(t, model.MatchNone, out[1].MatchedBy)
	assert.Equal(t, "", out[1].CategoryBSPL)
	assert.Equal(t, "", out[1].CategoryMajor)
	assert.Equal(t, "", out[1].CategoryMinor)
}

func TestMap_RowCountAndOrderPreserved(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row("1", "a"), row("2", "b"), row("3", "c"), row("", ""),
	}
	out, _, err := Map(rows, []model.MappingEntry{entry("2", "b", "BS", "x", "y")})
	require.NoError(t, err)
	require.Len(t, out, len(rows))
	for i := range rows {
		assert.Equal(t, rows[i].GLCode, out[i].GLCode)
	}
}

func TestMap_DuplicateMappingEntriesFirstWins(t *testing.T) {
	rows := []model.TrialBalanceRow{row("12015020", "Cash")}
	entries := []model.MappingEntry{
		entry("12015020", "Cash", "BS", "First", "First minor"),
		entry("12015020", "Cash", "BS", "Second", "Second minor"),
	}

	out, _, err := Map(rows, entries)
	require.NoError(t, err)
	assert.Equal(t, "First", out[0].CategoryMajor)
}

func TestMap_InputNotMutated(t *testing.T) {
	rows := []model.TrialBalanceRow{row("12015020", "Cash")}
	_, _, err := Map(rows, []model.MappingEntry{entry("12015020", "Cash", "BS", "Cash", "Bank")})
	require.NoError(t, err)
	assert.Equal(t, "", rows[0].CategoryMajor)
	assert.Equal(t, model.MatchNone, rows[0].MatchedBy)
	assert.Equal(t, model.AccountType(""), rows[0].AccountType)
}

func TestMap_EmptyMappingTable(t *testing.T) {
	_, _, err := Map([]model.TrialBalanceRow{row("1", "a")}, nil)
	assert.Error(t, err)
}
