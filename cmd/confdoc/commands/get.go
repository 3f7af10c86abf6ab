package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modsmith/confdoc/encode"
	"github.com/modsmith/confdoc/format"
	"github.com/modsmith/confdoc/ir"
)

func getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "print the value at a path, as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if s.Raw() {
				return fmt.Errorf("%s has no structural form", args[0])
			}
			p, err := ir.ParsePath(args[1])
			if err != nil {
				return err
			}
			node := p.Get(s.Tree())
			if node == nil {
				return fmt.Errorf("no value at %q", args[1])
			}
			opts := append(encodeOpts(), encode.EncodeFormat(format.JSONFormat))
			return encode.Encode(node, os.Stdout, opts...)
		},
	}
}
