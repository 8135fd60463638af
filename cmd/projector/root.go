package main

import (
	"github.com/spf13/cobra"

	"projector/internal/cli"
	"projector/internal/report"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projector [flags] [add <key> <value> | remove <key> | <key>]",
		Short: "Read and change a local key/value store",
		Long: `projector prints, adds and removes keys in a local key/value store.

  projector                    print every key
  projector <key>              print one key
  projector add <key> <value>  add or overwrite a key
  projector remove <key>       remove a key

Use -- before a key that starts with a dash.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(args)
		},
	}

	cli.BindFlags(cmd.Flags(), &a.opts)
	cmd.Flags().StringVarP(&a.format, "format", "f", string(report.FormatText), "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&a.verbose, "verbose", false, "Log resolution steps to stderr")

	return cmd
}
