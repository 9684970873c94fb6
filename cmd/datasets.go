package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imishinist/rlboard/internal/parser"
)

func newDatasetsCmd(a *app) *cobra.Command {
	datasetsCmd := &cobra.Command{
		Use:   "datasets",
		Short: "List metrics datasets",
		Long: `List the metrics datasets of the selected experiment folders.
With --filter only datasets whose hyperparameters fall inside every given
range are listed.`,
		Example: `  # Datasets of every folder
  rlboard datasets

  # Datasets of two folders with 0.1 <= alpha <= 0.5 and gamma >= 0.9
  rlboard datasets --folder runA --folder runB --filter alpha=0.1:0.5 --filter gamma=0.9:`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := a.selectedFolders(cmd)
			if err != nil {
				return err
			}

			ex := a.explorer()

			var datasets []string
			if cmd.Flags().Changed("filter") {
				filters, _ := cmd.Flags().GetStringArray("filter")
				spec, err := parser.ParseFilterSpec(filters)
				if err != nil {
					return fmt.Errorf("failed to parse filters: %w", err)
				}
				datasets = ex.ListDatasetsFiltered(folders, a.cfg.BaseDir, spec)
			} else {
				datasets = ex.ListDatasets(folders, a.cfg.BaseDir)
			}

			out := cmd.OutOrStdout()
			if len(datasets) == 0 {
				return printPlaceholder(out, a.cfg.Output, datasets,
					fmt.Sprintf("No datasets found in %s", strings.Join(folders, ", ")))
			}

			rows := make([][]string, len(datasets))
			for i, dataset := range datasets {
				rows[i] = []string{dataset}
			}
			return printResult(out, a.cfg.Output, datasets, []string{"Dataset"}, rows)
		},
	}

	datasetsCmd.Flags().StringArray("folder", []string{}, "Experiment folder (repeatable, default: all)")
	datasetsCmd.Flags().StringArray("filter", []string{}, "Hyperparameter range in name=min:max format (repeatable)")
	datasetsCmd.Flags().Bool("strict", false, "Reject datasets missing a filtered hyperparameter")
	a.v.BindPFlag("strict_filter", datasetsCmd.Flags().Lookup("strict"))

	return datasetsCmd
}
