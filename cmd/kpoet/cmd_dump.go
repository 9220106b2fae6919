package main

import (
	"github.com/cockroachdb/errors"
	"github.com/dhamidi/kpoet/format"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <document>",
		Short: "Dump the outline of the declarations in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.load(args[0])
			if err != nil {
				return err
			}

			var enc format.Encoder
			switch dumpFormat {
			case "json":
				enc = format.NewJSONEncoder(cmd.OutOrStdout())
			case "line":
				enc = format.NewLineEncoder(cmd.OutOrStdout())
			default:
				return errors.WithHint(
					errors.Newf("unknown format: %s", dumpFormat),
					"use json or line")
			}
			for _, spec := range file.Types {
				if err := enc.Encode(spec); err != nil {
					return errors.Wrapf(err, "encode %s", dumpFormat)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (json, line)")

	return cmd
}
