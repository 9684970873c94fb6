package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/imishinist/rlboard/internal/models"
)

type hyperparamsEntry struct {
	Folder          string                 `json:"folder" yaml:"folder"`
	Dataset         string                 `json:"dataset" yaml:"dataset"`
	Hyperparameters models.Hyperparameters `json:"hyperparameters" yaml:"hyperparameters"`
	Extra           map[string]any         `json:"extra,omitempty" yaml:"extra,omitempty"`
}

func newHyperparamsCmd(a *app) *cobra.Command {
	hyperparamsCmd := &cobra.Command{
		Use:   "hyperparams",
		Short: "Show hyperparameters of datasets",
		Long:  "Show the hyperparameters of every loadable (folder, dataset) pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundles, err := a.loadSelection(cmd)
			if err != nil {
				return err
			}

			entries := make([]hyperparamsEntry, 0, len(bundles))
			var rows [][]string
			for _, bundle := range bundles {
				entries = append(entries, hyperparamsEntry{
					Folder:          bundle.Folder,
					Dataset:         bundle.Dataset,
					Hyperparameters: bundle.Hyperparameters,
					Extra:           bundle.Extra,
				})
				for _, name := range bundle.Hyperparameters.Names() {
					rows = append(rows, []string{bundle.Label(), name, fmt.Sprint(bundle.Hyperparameters[name])})
				}
				// Extra entries are parenthesized.
				for _, key := range sortedKeys(bundle.Extra) {
					rows = append(rows, []string{bundle.Label(), "(" + key + ")", fmt.Sprint(bundle.Extra[key])})
				}
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				return printPlaceholder(out, a.cfg.Output, entries, "No data available for the selected folders and datasets")
			}
			return printResult(out, a.cfg.Output, entries, []string{"Dataset", "Hyperparameter", "Value"}, rows)
		},
	}

	addSelectionFlags(hyperparamsCmd)
	return hyperparamsCmd
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
