package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	out     io.Writer
	errOut  io.Writer
	log     *zap.Logger
	verbose bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "runtype",
		Short:         "Validate documents against runtype codecs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if a.log != nil {
				return nil
			}
			var err error
			if a.verbose {
				a.log, err = zap.NewDevelopment()
			} else {
				a.log, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "development logging")
	root.AddCommand(newCheckCmd(a), newCodecsCmd(a), newSchemaCmd(a))
	return root
}
