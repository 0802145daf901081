package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const periodTB = `GL Code,Description,Balance,(Unaudited) Mar'25,Mar'25 Adjusted
100001,Cash at bank,1250000,1000000,1250000
500001,Share capital,-1250000,-1000000,-1250000
900001,Suspense,0,0,0
`

func TestRunImpact_DetectsPeriodsAndReports(t *testing.T) {
	dir := t.TempDir()
	tbPath := writeFixture(t, dir, "tb.csv", periodTB)
	mapPath := writeFixture(t, dir, "mapping.csv", mappingCSV)

	var out bytes.Buffer
	err := runImpact(&out, tbPath, mapPath, "", "", "")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "prior:   (Unaudited) Mar'25")
	assert.Contains(t, out.String(), "current: Mar'25 Adjusted")
	assert.Contains(t, out.String(), "material changes (2)")
	assert.Contains(t, out.String(), "unknown account type (1")
}

func TestRunImpact_ExplicitColumnsSkipDetection(t *testing.T) {
	dir := t.TempDir()
	tbPath := writeFixture(t, dir, "tb.csv", periodTB)
	mapPath := writeFixture(t, dir, "mapping.csv", mappingCSV)

	var out bytes.Buffer
	err := runImpact(&out, tbPath, mapPath, "", "(Unaudited) Mar'25", "(Unaudited) Mar'25")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "rows with non-zero delta: 0")
}

func TestRunImpact_NoPeriodColumns(t *testing.T) {
	dir := t.TempDir()
	tbPath := writeFixture(t, dir, "tb.csv", balancedTB)
	mapPath := writeFixture(t, dir, "mapping.csv", mappingCSV)

	var out bytes.Buffer
	err := runImpact(&out, tbPath, mapPath, "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no period columns detected")
}

func TestRunCategorize_ReportsUnmappedAndSuggestions(t *testing.T) {
	dir := t.TempDir()
	tb := `GL Code,Description,Balance
100001,Cash at bank,1000
999999,Cash at bnk,-1000
`
	tbPath := writeFixture(t, dir, "tb.csv", tb)
	mapPath := writeFixture(t, dir, "mapping.csv", mappingCSV)

	var out bytes.Buffer
	err := runCategorize(&out, tbPath, mapPath, 10)
	require.NoError(t, err)

	assert.Regexp(t, `unmapped:\s+1`, out.String())
	assert.Contains(t, out.String(), "[999999] Cash at bnk")
	assert.Contains(t, out.String(), "suggestions")
	assert.Contains(t, out.String(), "Cash and cash equivalents")
}
