package commands

import (
	"fmt"
	"os"

	"github.com/sblr80595/financialreporting-sub000/internal/config"
	"github.com/sblr80595/financialreporting-sub000/internal/ingest"
	"github.com/sblr80595/financialreporting-sub000/internal/model"
)

// loadConfig loads a tbcheck.yaml, or the defaults when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(""), nil
	}
	return config.Load(path)
}

// loadInputs reads the trial balance and mapping CSVs.
func loadInputs(tbPath, mapPath string) (*ingest.TrialBalance, []model.MappingEntry, error) {
	tbFile, err := os.Open(tbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening trial balance: %w", err)
	}
	defer tbFile.Close()

	tb, err := ingest.ReadTrialBalance(tbFile)
	if err != nil {
		return nil, nil, err
	}

	mapFile, err := os.Open(mapPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening mapping table: %w", err)
	}
	defer mapFile.Close()

	entries, err := ingest.ReadMappingTable(mapFile)
	if err != nil {
		return nil, nil, err
	}
	return tb, entries, nil
}
