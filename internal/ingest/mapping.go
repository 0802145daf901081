package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
	"github.com/sblr80595/financialreporting-sub000/internal/schema"
)

// Reference mapping table headers. Extracts are inconsistent about the
// description and category labels, so each logical column accepts a small
// alias set; the first alias present wins.
var (
	mappingCodeAliases  = []string{"GL Code"}
	mappingDescAliases  = []string{"GL Description", "Description", "Account Description"}
	mappingBSPLAliases  = []string{"BSPL Category", "BSPL"}
	mappingMajorAliases = []string{"Major Category", "Ind AS Major Category"}
	mappingMinorAliases = []string{"Minor Category", "Ind AS Minor Category"}
)

// ReadMappingTable reads the reference mapping CSV. All five logical
// columns must resolve; a missing one fails immediately, naming the
// aliases tried and the headers available.
func ReadMappingTable(r io.Reader) ([]model.MappingEntry, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading mapping CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("mapping CSV is empty")
	}

	cols, err := schema.ResolveColumns(records[0])
	if err != nil {
		return nil, fmt.Errorf("mapping table: %w", err)
	}

	codeIdx, err := resolveAlias(cols, mappingCodeAliases)
	if err != nil {
		return nil, fmt.Errorf("mapping table: %w", err)
	}
	descIdx, err := resolveAlias(cols, mappingDescAliases)
	if err != nil {
		return nil, fmt.Errorf("mapping table: %w", err)
	}
	bsplIdx, err := resolveAlias(cols, mappingBSPLAliases)
	if err != nil {
		return nil, fmt.Errorf("mapping table: %w", err)
	}
	majorIdx, err := resolveAlias(cols, mappingMajorAliases)
	if err != nil {
		return nil, fmt.Errorf("mapping table: %w", err)
	}
	minorIdx, err := resolveAlias(cols, mappingMinorAliases)
	if err != nil {
		return nil, fmt.Errorf("mapping table: %w", err)
	}

	var entries []model.MappingEntry
	for _, rec := range records[1:] {
		entries = append(entries, model.MappingEntry{
			GLCode:        field(rec, codeIdx),
			Description:   field(rec, descIdx),
			CategoryBSPL:  field(rec, bsplIdx),
			CategoryMajor: field(rec, majorIdx),
			CategoryMinor: field(rec, minorIdx),
		})
	}
	return entries, nil
}

func resolveAlias(cols schema.Columns, aliases []string) (int, error) {
	for _, a := range aliases {
		if i, ok := cols.Lookup(a); ok {
			return i, nil
		}
	}
	return 0, fmt.Errorf("none of the columns %v found, have %v", aliases, cols.Headers())
}
