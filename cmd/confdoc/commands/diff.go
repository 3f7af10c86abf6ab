package commands

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/modsmith/confdoc/session"
)

func diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "print a character diff between two config files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.OSStore()
			a, err := store.ReadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, err := store.ReadFile(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(a, b, false)
			diffs = dmp.DiffCleanupSemantic(diffs)
			fmt.Fprint(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
			return nil
		},
	}
}
