package main

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a declaration document as Kotlin source",
		Long: `Render a declaration document as Kotlin source.

The file is written to stdout, or with --out into the given directory,
named after its first declaration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.load(args[0])
			if err != nil {
				return err
			}
			if a.cfg.Out == "" {
				_, err := file.WriteTo(cmd.OutOrStdout())
				return err
			}

			if err := os.MkdirAll(a.cfg.Out, 0o755); err != nil {
				return errors.Wrap(err, "create output directory")
			}
			path := filepath.Join(a.cfg.Out, file.Name())
			if err := os.WriteFile(path, []byte(file.String()), 0o644); err != nil {
				return errors.Wrapf(err, "write %s", path)
			}
			log.Infof("wrote %s", path)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "", "directory to write the .kt file into")

	return cmd
}
