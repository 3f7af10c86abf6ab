package commands

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/spf13/cobra"

	"github.com/modsmith/confdoc/encode"
	"github.com/modsmith/confdoc/format"
	"github.com/modsmith/confdoc/ir"
)

func queryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query <file> <expr>",
		Short: "print leaf paths whose (path, key, kind, value) satisfy an expression",
		Long: `The expression sees each leaf as: path (string), key (string), kind
(Null/Bool/Number/String) and value. Examples:

  confdoc query server.toml 'kind == "Number" && value > 100'
  confdoc query app.yaml 'key contains "enable" && value == true'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if s.Raw() {
				return fmt.Errorf("%s has no structural form", args[0])
			}
			env := leafEnv(ir.Path{}, "", ir.Null())
			program, err := expr.Compile(args[1], expr.Env(env), expr.AsBool())
			if err != nil {
				return fmt.Errorf("bad expression: %w", err)
			}
			return walkLeaves(s.Tree(), nil, "", func(p ir.Path, key string, node *ir.Node) error {
				out, err := expr.Run(program, leafEnv(p, key, node))
				if err != nil {
					return err
				}
				if out.(bool) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
						p, encode.MustString(node, encode.EncodeFormat(format.JSONFormat)))
				}
				return nil
			})
		},
	}
}

func leafEnv(p ir.Path, key string, node *ir.Node) map[string]any {
	var value any
	switch node.Type {
	case ir.BoolType:
		value = node.Bool
	case ir.NumberType:
		value = node.Float()
	case ir.StringType:
		value = node.String
	default:
		value = nil
	}
	return map[string]any{
		"path":  p.String(),
		"key":   key,
		"kind":  node.Type.String(),
		"value": value,
	}
}

func walkLeaves(node *ir.Node, p ir.Path, key string, f func(ir.Path, string, *ir.Node) error) error {
	switch node.Type {
	case ir.ObjectType:
		for i, field := range node.Fields {
			if err := walkLeaves(node.Values[i], p.Child(ir.Key(field)), field, f); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		for i, v := range node.Values {
			if err := walkLeaves(v, p.Child(ir.Index(i)), key, f); err != nil {
				return err
			}
		}
		return nil
	default:
		return f(p, key, node)
	}
}
