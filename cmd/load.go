package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imishinist/rlboard/internal/explorer"
	"github.com/imishinist/rlboard/internal/models"
)

type bundleSummary struct {
	Label           string `json:"label" yaml:"label"`
	Rows            int    `json:"rows" yaml:"rows"`
	Hyperparameters int    `json:"hyperparameters" yaml:"hyperparameters"`
}

type loadSummary struct {
	Bundles         []bundleSummary `json:"bundles" yaml:"bundles"`
	Rows            int             `json:"rows" yaml:"rows"`
	TimeColumn      string          `json:"time_column" yaml:"time_column"`
	MissingInstants int             `json:"missing_instants" yaml:"missing_instants"`
	MetricColumns   []string        `json:"metric_columns" yaml:"metric_columns"`
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("folder", []string{}, "Experiment folder (repeatable, default: all)")
	cmd.Flags().StringArray("dataset", []string{}, "Metrics dataset (repeatable, default: all in the selected folders)")
}

// loadSelection loads the bundles selected by --folder and --dataset.
func (a *app) loadSelection(cmd *cobra.Command) ([]models.Bundle, error) {
	folders, err := a.selectedFolders(cmd)
	if err != nil {
		return nil, err
	}

	ex := a.explorer()
	datasets, _ := cmd.Flags().GetStringArray("dataset")
	if len(datasets) == 0 {
		datasets = ex.ListDatasets(folders, a.cfg.BaseDir)
	}

	return ex.LoadCombined(folders, datasets, a.cfg.BaseDir), nil
}

func (a *app) combineSelection(cmd *cobra.Command) ([]models.Bundle, *models.CombinedTable, error) {
	bundles, err := a.loadSelection(cmd)
	if err != nil {
		return nil, nil, err
	}

	combined, err := explorer.Combine(bundles, a.cfg.TimeConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to combine metrics: %w", err)
	}
	return bundles, combined, nil
}

func newLoadCmd(a *app) *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load and combine metrics datasets",
		Long: `Load the selected (folder, dataset) pairs, combine their metrics into one
table and report the plottable metric columns. Pairs with missing or
malformed files are skipped and logged.`,
		Example: `  rlboard load --folder runA --folder runB --dataset run1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundles, combined, err := a.combineSelection(cmd)
			if err != nil {
				return err
			}

			summary := loadSummary{
				Bundles:         make([]bundleSummary, 0, len(bundles)),
				Rows:            len(combined.Table.Rows),
				TimeColumn:      combined.TimeColumn,
				MissingInstants: combined.MissingInstant,
				MetricColumns:   combined.MetricColumns,
			}
			rows := make([][]string, 0, len(bundles))
			for _, bundle := range bundles {
				s := bundleSummary{
					Label:           bundle.Label(),
					Rows:            len(bundle.Metrics.Rows),
					Hyperparameters: len(bundle.Hyperparameters),
				}
				summary.Bundles = append(summary.Bundles, s)
				rows = append(rows, []string{s.Label, strconv.Itoa(s.Rows), strconv.Itoa(s.Hyperparameters)})
			}

			out := cmd.OutOrStdout()
			if combined.Empty() {
				return printPlaceholder(out, a.cfg.Output, summary, "No data available for the selected folders and datasets")
			}
			if err := printResult(out, a.cfg.Output, summary, []string{"Dataset", "Rows", "Hyperparameters"}, rows); err != nil {
				return err
			}
			if a.cfg.Output == "table" {
				fmt.Fprintf(out, "Metric columns: %s\n", strings.Join(combined.MetricColumns, ", "))
				if combined.MissingInstant > 0 {
					fmt.Fprintf(out, "Rows with unparseable %s: %d\n", combined.TimeColumn, combined.MissingInstant)
				}
			}
			return nil
		},
	}

	addSelectionFlags(loadCmd)
	return loadCmd
}

func newColumnsCmd(a *app) *cobra.Command {
	columnsCmd := &cobra.Command{
		Use:   "columns",
		Short: "List plottable metric columns",
		Long:  "List the metric columns of the combined table of the selected datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, combined, err := a.combineSelection(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(combined.MetricColumns) == 0 {
				return printPlaceholder(out, a.cfg.Output, combined.MetricColumns, "No metric columns available")
			}

			rows := make([][]string, len(combined.MetricColumns))
			for i, col := range combined.MetricColumns {
				rows[i] = []string{col}
			}
			return printResult(out, a.cfg.Output, combined.MetricColumns, []string{"Metric"}, rows)
		},
	}

	addSelectionFlags(columnsCmd)
	return columnsCmd
}
