package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sblr80595/financialreporting-sub000/internal/mapper"
	"github.com/sblr80595/financialreporting-sub000/internal/rules"
)

// maxPrintedViolations caps per-rule violation output; full detail stays in
// the Result for machine consumers.
const maxPrintedViolations = 10

func newValidateCommand() *cobra.Command {
	var tbPath, mapPath, cfgPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Categorize a trial balance and run the integrity rule battery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), tbPath, mapPath, cfgPath)
		},
	}

	cmd.Flags().StringVar(&tbPath, "trial-balance", "", "consolidated trial balance CSV (required)")
	_ = cmd.MarkFlagRequired("trial-balance")
	cmd.Flags().StringVar(&mapPath, "mapping", "", "reference mapping CSV (required)")
	_ = cmd.MarkFlagRequired("mapping")
	cmd.Flags().StringVar(&cfgPath, "config", "", "tbcheck.yaml (defaults apply when omitted)")

	return cmd
}

func runValidate(w io.Writer, tbPath, mapPath, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	tb, entries, err := loadInputs(tbPath, mapPath)
	if err != nil {
		return err
	}

	rows, unmapped, err := mapper.Map(tb.Rows, entries)
	if err != nil {
		return err
	}
	if unmapped > 0 {
		fmt.Fprintf(w, "warning: %d of %d rows unmapped (run categorize for detail)\n\n", unmapped, len(rows))
	}

	results := rules.NewEngine().Run(rows, cfg.RunConfig())
	printResults(w, results)

	if rules.CriticalFailure(results) {
		return fmt.Errorf("validation failed: one or more critical rules did not pass")
	}
	return nil
}

func printResults(w io.Writer, results []rules.Result) {
	for _, res := range results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "Rule %d %-24s %s (%s)\n", res.RuleNumber, res.RuleKey, status, res.Severity)

		keys := make([]string, 0, len(res.Metrics))
		for k := range res.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %-24s %v\n", k, res.Metrics[k])
		}

		for i, v := range res.Violations {
			if i == maxPrintedViolations {
				fmt.Fprintf(w, "  ... and %d more\n", len(res.Violations)-maxPrintedViolations)
				break
			}
			fmt.Fprintf(w, "  row %d [%s] %s\n", v.RowIndex, v.GLCode, v.Detail)
		}
		fmt.Fprintln(w)
	}
}
