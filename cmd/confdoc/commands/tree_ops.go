package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/modsmith/confdoc/edit"
	"github.com/modsmith/confdoc/ir"
)

func unsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <file> <path>",
		Short: "delete the key or array element at a path and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyAndSave(cmd, args[0], args[1], edit.Delete{})
		},
	}
}

func appendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "append <file> <path>",
		Short: "append a default-valued item to the array at a path and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyAndSave(cmd, args[0], args[1], edit.AddItem{})
		},
	}
}

func applyAndSave(cmd *cobra.Command, file, path string, op edit.Op) error {
	s, err := openSession(cmd.Context(), file)
	if err != nil {
		return err
	}
	if s.Raw() {
		return fmt.Errorf("%s has no structural form", file)
	}
	p, err := ir.ParsePath(path)
	if err != nil {
		return err
	}
	if err := s.Apply(p, op); err != nil {
		return err
	}
	return s.Save(cmd.Context())
}

func commentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <file>",
		Short: "list comments captured at parse time, by path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if s.Raw() {
				return fmt.Errorf("%s has no structural form", args[0])
			}
			paths := make([]string, 0, len(s.Comments()))
			for p := range s.Comments() {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p, s.Comments()[p])
			}
			return nil
		},
	}
}
