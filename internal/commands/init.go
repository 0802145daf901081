package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sblr80595/financialreporting-sub000/internal/config"
)

func newInitCommand() *cobra.Command {
	var entity string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default tbcheck.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, entity)
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "reporting entity name (required)")
	_ = cmd.MarkFlagRequired("entity")

	return cmd
}

func runInit(dir, entity string) error {
	path := filepath.Join(dir, "tbcheck.yaml")
	cfg := config.Default(entity)
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("Wrote %s for %s\n", path, entity)
	return nil
}
