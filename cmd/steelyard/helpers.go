package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/steelyard-audit/steelyard/internal/common"
	"github.com/steelyard-audit/steelyard/internal/config"
	"github.com/steelyard-audit/steelyard/internal/finance"
	"github.com/steelyard-audit/steelyard/internal/model"
)

// loadSnapshots reads product snapshots from a JSON file. The file may hold
// a single snapshot object or an array of them.
func loadSnapshots(path string) ([]model.ProductSnapshot, error) {
	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not read product file %s", path), err)
	}

	var list []model.ProductSnapshot
	if err := json.Unmarshal(data, &list); err == nil {
		if len(list) == 0 {
			return nil, common.ErrEmptyCatalog
		}
		return list, nil
	}

	var single model.ProductSnapshot
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("%w: %s is neither a snapshot nor an array of snapshots", common.ErrMalformedFile, path)
	}
	return []model.ProductSnapshot{single}, nil
}

// loadHistory reads a listing history file for shadow-ban detection.
func loadHistory(path string) (model.ListingHistory, error) {
	var history model.ListingHistory

	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return history, common.NewUserError(fmt.Sprintf("could not read history file %s", path), err)
	}

	if err := json.Unmarshal(data, &history); err != nil {
		return history, fmt.Errorf("%w: %s", common.ErrMalformedFile, path)
	}

	return history, nil
}

// newCalculator builds a finance calculator from the loaded configuration.
func newCalculator() (*finance.Calculator, *config.Finance, error) {
	settings, err := config.LoadFinance()
	if err != nil {
		return nil, nil, err
	}
	return finance.NewCalculator(settings.VATRate, settings.RevenueLimit), settings, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
