package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modsmith/confdoc/encode"
	"github.com/modsmith/confdoc/format"
)

func convertCommand() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "re-render a config file in another format on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.ParseFormat(to)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if s.Raw() {
				return fmt.Errorf("%s has no structural form", args[0])
			}
			opts := append(encodeOpts(), encode.EncodeFormat(f))
			return encode.Encode(s.Tree(), os.Stdout, opts...)
		},
	}
	cmd.Flags().StringVar(&to, "to", "json", "target format: json|toml|yaml|properties")
	return cmd
}
