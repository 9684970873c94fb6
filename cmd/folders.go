package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newFoldersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List experiment folders",
		Long:  "List the experiment folders found in the base directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := a.explorer().ListFolders(a.cfg.BaseDir)
			if err != nil {
				return fmt.Errorf("failed to list folders: %w", err)
			}
			sort.Strings(folders)

			out := cmd.OutOrStdout()
			if len(folders) == 0 {
				return printPlaceholder(out, a.cfg.Output, folders,
					fmt.Sprintf("No experiment folders found in %s", a.cfg.BaseDir))
			}

			rows := make([][]string, len(folders))
			for i, folder := range folders {
				rows[i] = []string{folder}
			}
			return printResult(out, a.cfg.Output, folders, []string{"Folder"}, rows)
		},
	}
}
