package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sblr80595/financialreporting-sub000/internal/mapper"
	"github.com/sblr80595/financialreporting-sub000/internal/model"
)

func newCategorizeCommand() *cobra.Command {
	var tbPath, mapPath string
	var suggestDistance int

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Map trial balance rows to statutory categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategorize(cmd.OutOrStdout(), tbPath, mapPath, suggestDistance)
		},
	}

	cmd.Flags().StringVar(&tbPath, "trial-balance", "", "consolidated trial balance CSV (required)")
	_ = cmd.MarkFlagRequired("trial-balance")
	cmd.Flags().StringVar(&mapPath, "mapping", "", "reference mapping CSV (required)")
	_ = cmd.MarkFlagRequired("mapping")
	cmd.Flags().IntVar(&suggestDistance, "suggest-distance", 10, "max edit distance for mapping suggestions (0 disables)")

	return cmd
}

func runCategorize(w io.Writer, tbPath, mapPath string, suggestDistance int) error {
	tb, entries, err := loadInputs(tbPath, mapPath)
	if err != nil {
		return err
	}

	rows, unmapped, err := mapper.Map(tb.Rows, entries)
	if err != nil {
		return err
	}

	stageCounts := map[model.MatchStage]int{}
	for _, row := range rows {
		stageCounts[row.MatchedBy]++
	}

	fmt.Fprintf(w, "rows:                 %d\n", len(rows))
	fmt.Fprintf(w, "matched by code:      %d\n", stageCounts[model.MatchCodeExact])
	fmt.Fprintf(w, "matched loose code:   %d\n", stageCounts[model.MatchCodeLoose])
	fmt.Fprintf(w, "matched description:  %d\n", stageCounts[model.MatchDesc])
	fmt.Fprintf(w, "unmapped:             %d\n", unmapped)

	if unmapped == 0 {
		return nil
	}

	fmt.Fprintln(w, "\nunmapped rows:")
	for _, row := range rows {
		if !row.Mapped() {
			fmt.Fprintf(w, "  [%s] %s\n", row.GLCode, row.Description)
		}
	}

	if suggestDistance > 0 {
		suggestions := mapper.Suggest(rows, entries, suggestDistance)
		if len(suggestions) > 0 {
			fmt.Fprintln(w, "\nsuggestions (closest mapping entry by description):")
			for _, s := range suggestions {
				fmt.Fprintf(w, "  [%s] -> %s / %s / %s (distance %d)\n",
					s.GLCode, s.Entry.CategoryBSPL, s.Entry.CategoryMajor, s.Entry.CategoryMinor, s.Distance)
			}
		}
	}
	return nil
}
