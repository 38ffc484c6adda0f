package main

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/internal/catalog"
)

func newCodecsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "codecs",
		Short: "List catalog codecs",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
			for _, e := range catalog.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Codec.Name(), e.Description)
			}
			return tw.Flush()
		},
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a catalog codec",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			e, ok := catalog.Lookup(id)
			if !ok {
				return fmt.Errorf("unknown codec %q", id)
			}
			b, err := json.MarshalIndent(runtype.JSONSchema(e.Codec), "", "  ")
			if err != nil {
				return err
			}
			a.log.Debug("schema", zap.String("codec", id), zap.Int("bytes", len(b)))
			fmt.Fprintln(a.out, string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&id, "codec", "c", "", "catalog codec ID")
	_ = cmd.MarkFlagRequired("codec")
	return cmd
}
