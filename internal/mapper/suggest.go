package mapper

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/sblr80595/financialreporting-sub000/internal/model"
	"github.com/sblr80595/financialreporting-sub000/internal/normalize"
)

// Suggestion proposes the mapping entry whose description is closest to an
// unmapped row's. Suggestions are advisory: they are rendered for a human
// to act on and never assign categories themselves.
type Suggestion struct {
	RowIndex int
	GLCode   string
	Entry    model.MappingEntry
	Distance int
}

// Suggest returns, for each unmapped row, the nearest mapping entry by
// Levenshtein distance over normalized descriptions, keeping only matches
// within maxDistance edits. Results are ordered by distance, then by row
// index for ties.
func Suggest(rows []model.TrialBalanceRow, entries []model.MappingEntry, maxDistance int) []Suggestion {
	type candidate struct {
		entry model.MappingEntry
		desc  string
	}
	var candidates []candidate
	for _, e := range entries {
		if d := normalize.Description(e.Description); d != "" {
			candidates = append(candidates, candidate{entry: e, desc: d})
		}
	}

	var suggestions []Suggestion
	for i, row := range rows {
		if row.Mapped() {
			continue
		}
		desc := normalize.Description(row.Description)
		if desc == "" {
			continue
		}
		best := -1
		var bestEntry model.MappingEntry
		for _, c := range candidates {
			d := levenshtein.ComputeDistance(desc, c.desc)
			if best < 0 || d < best {
				best = d
				bestEntry = c.entry
			}
		}
		if best >= 0 && best <= maxDistance {
			suggestions = append(suggestions, Suggestion{
				RowIndex: i,
				GLCode:   row.GLCode,
				Entry:    bestEntry,
				Distance: best,
			})
		}
	}

	sort.SliceStable(suggestions, func(a, b int) bool {
		return suggestions[a].Distance < suggestions[b].Distance
	})
	return suggestions
}
