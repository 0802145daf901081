package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sblr80595/financialreporting-sub000/internal/impact"
	"github.com/sblr80595/financialreporting-sub000/internal/mapper"
	"github.com/sblr80595/financialreporting-sub000/internal/schema"
)

func newImpactCommand() *cobra.Command {
	var tbPath, mapPath, cfgPath, priorCol, currentCol string

	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Report period-over-period deltas and material changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImpact(cmd.OutOrStdout(), tbPath, mapPath, cfgPath, priorCol, currentCol)
		},
	}

	cmd.Flags().StringVar(&tbPath, "trial-balance", "", "consolidated trial balance CSV (required)")
	_ = cmd.MarkFlagRequired("trial-balance")
	cmd.Flags().StringVar(&mapPath, "mapping", "", "reference mapping CSV (required)")
	_ = cmd.MarkFlagRequired("mapping")
	cmd.Flags().StringVar(&cfgPath, "config", "", "tbcheck.yaml (defaults apply when omitted)")
	cmd.Flags().StringVar(&priorCol, "prior", "", "prior period column (detected when omitted)")
	cmd.Flags().StringVar(&currentCol, "current", "", "current period column (detected when omitted)")

	return cmd
}

func runImpact(w io.Writer, tbPath, mapPath, cfgPath, priorCol, currentCol string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	tb, entries, err := loadInputs(tbPath, mapPath)
	if err != nil {
		return err
	}

	if priorCol == "" || currentCol == "" {
		periods, err := schema.DetectPeriodColumns(tb.Headers)
		if err != nil {
			return err
		}
		if periods.Degenerate {
			fmt.Fprintf(w, "warning: single period column %q used as both prior and current\n\n", periods.Prior)
		}
		if priorCol == "" {
			priorCol = periods.Prior
		}
		if currentCol == "" {
			currentCol = periods.Current
		}
	}

	rows, _, err := mapper.Map(tb.Rows, entries)
	if err != nil {
		return err
	}

	report, err := impact.Analyze(rows, priorCol, currentCol, cfg.ImpactOptions())
	if err != nil {
		return err
	}
	printImpact(w, report)
	return nil
}

func printImpact(w io.Writer, report impact.Report) {
	fmt.Fprintf(w, "prior:   %s\ncurrent: %s\n\n", report.PriorColumn, report.CurrentColumn)

	fmt.Fprintf(w, "material changes (%d):\n", len(report.Material))
	for _, rec := range report.Material {
		fmt.Fprintf(w, "  [%s] %-40s %s -> %s (delta %s)\n",
			rec.GLCode, rec.Description, rec.Prior.StringFixed(2), rec.Current.StringFixed(2), rec.Delta.StringFixed(2))
	}

	fmt.Fprintln(w, "\nby category:")
	for _, cd := range report.ByCategory {
		fmt.Fprintf(w, "  %-40s %s -> %s (delta %s)\n",
			cd.Label, cd.Prior.StringFixed(2), cd.Current.StringFixed(2), cd.Delta.StringFixed(2))
	}

	fmt.Fprintln(w, "\nby account type:")
	for _, cd := range report.ByType {
		fmt.Fprintf(w, "  %-12s %s -> %s (delta %s)\n",
			cd.Label, cd.Prior.StringFixed(2), cd.Current.StringFixed(2), cd.Delta.StringFixed(2))
	}

	if len(report.UnknownType) > 0 {
		fmt.Fprintf(w, "\nunknown account type (%d rows, excluded from statements):\n", len(report.UnknownType))
		for _, rec := range report.UnknownType {
			fmt.Fprintf(w, "  [%s] %s\n", rec.GLCode, rec.Description)
		}
	}

	fmt.Fprintf(w, "\nrows with non-zero delta: %d\n", len(report.Changes))
}
