// Package mapper joins trial balance rows to the statutory reference
// mapping table, attaching a BSPL / Major / Minor category triple and an
// account type to every row.
package mapper

import (
	"fmt"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
	"github.com/sblr80595/financialreporting-sub000/internal/normalize"
)

// index holds the de-duplicated lookup tables built from the mapping
// entries. De-duplication is first-wins on the normalized key, so a
// mapping table with repeated codes resolves deterministically.
type index struct {
	byCodeStrict map[string]model.MappingEntry // separator-preserving code
	byCodeLoose  map[string]model.MappingEntry // separator-stripped code
	byDesc       map[string]model.MappingEntry // normalized description, empty-code entries included
}

func buildIndex(entries []model.MappingEntry) index {
	idx := index{
		byCodeStrict: make(map[string]model.MappingEntry, len(entries)),
		byCodeLoose:  make(map[string]model.MappingEntry, len(entries)),
		byDesc:       make(map[string]model.MappingEntry, len(entries)),
	}
	for _, e := range entries {
		if k := normalize.Code(e.GLCode, true); k != "" {
			if _, seen := idx.byCodeStrict[k]; !seen {
				idx.byCodeStrict[k] = e
			}
		}
		if k := normalize.Code(e.GLCode, false); k != "" {
			if _, seen := idx.byCodeLoose[k]; !seen {
				idx.byCodeLoose[k] = e
			}
		}
		if k := normalize.Description(e.Description); k != "" {
			if _, seen := idx.byDesc[k]; !seen {
				idx.byDesc[k] = e
			}
		}
	}
	return idx
}

// resolve tries the cascade stages in order and short-circuits on the
// first hit. Stage 3 (description fallback) is only reached when both code
// joins miss, so an exact code match always wins over a description match.
func (idx index) resolve(row model.TrialBalanceRow) (model.MappingEntry, model.MatchStage) {
	if k := normalize.Code(row.GLCode, true); k != "" {
		if e, ok := idx.byCodeStrict[k]; ok {
			return e, model.MatchCodeExact
		}
	}
	if k := normalize.Code(row.GLCode, false); k != "" {
		if e, ok := idx.byCodeLoose[k]; ok {
			return e, model.MatchCodeLoose
		}
	}
	if k := normalize.Description(row.Description); k != "" {
		if e, ok := idx.byDesc[k]; ok {
			return e, model.MatchDesc
		}
	}
	return model.MappingEntry{}, model.MatchNone
}

// Map attaches statutory categories and account types to trial balance
// rows. The output always has the same row count and order as the input;
// rows no entry resolves keep empty-string categories and are counted in
// unmapped. The input slices are not mutated.
func Map(rows []model.TrialBalanceRow, entries []model.MappingEntry) ([]model.TrialBalanceRow, int, error) {
	if len(entries) == 0 {
		return nil, 0, fmt.Errorf("mapping table is empty: at least one entry with a GL code or description is required")
	}

	idx := buildIndex(entries)

	out := make([]model.TrialBalanceRow, len(rows))
	unmapped := 0
	for i, row := range rows {
		entry, stage := idx.resolve(row)
		row.MatchedBy = stage
		if stage == model.MatchNone {
			row.CategoryBSPL = ""
			row.CategoryMajor = ""
			row.CategoryMinor = ""
			unmapped++
		} else {
			row.CategoryBSPL = entry.CategoryBSPL
			row.CategoryMajor = entry.CategoryMajor
			row.CategoryMinor = entry.CategoryMinor
		}
		row.AccountType = model.ClassifyAccount(row.GLCode)
		out[i] = row
	}
	return out, unmapped, nil
}
