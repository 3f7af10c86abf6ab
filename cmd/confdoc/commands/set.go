package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modsmith/confdoc/edit"
	"github.com/modsmith/confdoc/ir"
)

func setCommand() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "replace the value at a path and save",
		Long: `The value is interpreted by the kind of the node it replaces: booleans
take true/false, numbers take any numeric literal, strings take the text
as-is. Container nodes cannot be set; use unset and append instead.`,
		Args: cobra.ExactArgs(3),
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
			target := p.Get(s.Tree())
			if target == nil {
				return fmt.Errorf("no value at %q", args[1])
			}
			op, err := setOpFor(target, args[2])
			if err != nil {
				return err
			}
			if err := s.Apply(p, op); err != nil {
				return err
			}
			if dryRun {
				_, err := os.Stdout.WriteString(s.DiffPretty())
				return err
			}
			return s.Save(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the pending diff instead of saving")
	return cmd
}

func setOpFor(target *ir.Node, raw string) (edit.Op, error) {
	switch target.Type {
	case ir.BoolType:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", raw)
		}
		return edit.SetBool{Value: v}, nil
	case ir.NumberType:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return edit.SetNumber{Value: v}, nil
	case ir.StringType:
		return edit.SetString{Value: raw}, nil
	default:
		return nil, fmt.Errorf("cannot set a %s node", target.Type)
	}
}
