package commands

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modsmith/confdoc/encode"
	"github.com/modsmith/confdoc/session"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "confdoc",
		Short:         "inspect and edit mod config files (json, toml, yaml, properties)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}
	root.PersistentFlags().Bool("color", false, "force colorized output")
	root.PersistentFlags().Int("indent", 2, "indentation width for serializers")
	root.PersistentFlags().Bool("verbose", false, "debug logging")
	viper.SetEnvPrefix("confdoc")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("color", root.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("indent", root.PersistentFlags().Lookup("indent"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(
		showCommand(),
		getCommand(),
		setCommand(),
		unsetCommand(),
		appendCommand(),
		commentsCommand(),
		convertCommand(),
		diffCommand(),
		queryCommand(),
		findCommand(),
	)
	return root
}

func openSession(ctx context.Context, path string) (*session.Session, error) {
	return session.Open(ctx, session.OSStore(), path)
}

func encodeOpts() []encode.EncodeOption {
	opts := []encode.EncodeOption{encode.Indent(viper.GetInt("indent"))}
	if viper.GetBool("color") {
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	} else if c := encode.TerminalColors(); c != nil {
		opts = append(opts, encode.EncodeColors(c))
	}
	return opts
}
