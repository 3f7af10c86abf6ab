package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/modsmith/confdoc/encode"
)

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "parse a config file and print its canonical rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if s.Raw() {
				// No structural form; the raw text is all there is.
				_, err := os.Stdout.WriteString(s.Text())
				return err
			}
			opts := append(encodeOpts(), encode.EncodeFormat(s.Format()))
			return encode.Encode(s.Tree(), os.Stdout, opts...)
		},
	}
}
