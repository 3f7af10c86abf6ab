package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/modsmith/confdoc/session"
)

func findCommand() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "find <mod-name> [filename-base]",
		Short: "list candidate config files for a mod, best match first",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := ""
			if len(args) == 2 {
				base = args[1]
			}
			finder := session.NewAferoFinder(afero.NewOsFs(), root)
			cands, err := finder.ListCandidateConfigFiles(cmd.Context(), args[0], base)
			if err != nil {
				return err
			}
			for _, c := range cands {
				fmt.Fprintln(cmd.OutOrStdout(), c.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "directory to search for config files")
	return cmd
}
